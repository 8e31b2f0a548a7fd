package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/jpavezs/actascli/internal/guard"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs. The
// real App satisfies it; tests can provide a stub.
type execIface interface {
	guardDecision() guard.Decision
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Create(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

// runREPL reads commands line by line and dispatches to a. Commands
// touching records are gated on session state: a pending resolve shows
// a loading placeholder, a missing session redirects to login. The loop
// exits on EOF or on "exit"/"quit". Handler errors are not re-reported
// here; handlers print their own.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("actas> %s >", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			printlnFn("Comandos: register, login, logout, whoami, list, show <id>, create, delete <id>, exit")

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "list", "show", "create", "delete":
			switch a.guardDecision() {
			case guard.Pending:
				printlnFn("Cargando...")
			case guard.Denied:
				printlnFn("Necesitas iniciar sesión (login).")
			default:
				switch cmd {
				case "list":
					_ = a.List(ctx)
				case "show":
					_ = a.Show(ctx, arg)
				case "create":
					_ = a.Create(ctx)
				case "delete":
					_ = a.Delete(ctx, arg)
				}
			}

		case "exit", "quit":
			return

		default:
			printlnFn("Comando desconocido: " + cmd)
		}
	}
}
