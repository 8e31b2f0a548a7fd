package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/jpavezs/actascli/internal/api"
)

// Register walks the registration form. The form is only shown once the
// gate has been passed; a wrong key clears the attempt and reports the
// error, with unlimited retries on subsequent invocations.
func (a *App) Register(ctx context.Context) error {
	if !a.gate.Unlocked() {
		key, err := readLine(a.reader, "Clave de registro", a.out)
		if err != nil {
			return err
		}
		if !a.gate.Try(key) {
			fmt.Fprintln(a.out, "Clave incorrecta. Contacta al administrador.")
			return nil
		}
	}

	nombre, err := readLine(a.reader, "Nombre", a.out)
	if err != nil {
		return err
	}
	cargo, err := readLine(a.reader, "Cargo (opcional)", a.out)
	if err != nil {
		return err
	}
	email, err := readLine(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := readPasswordLine("Contraseña", a.out)
	if err != nil {
		return err
	}

	resp, err := a.sess.Register(ctx, api.RegisterRequest{
		Nombre:   nombre,
		Cargo:    cargo,
		Email:    email,
		Password: password,
	})
	if err != nil {
		var serr *api.StatusError
		if errors.As(err, &serr) {
			fmt.Fprintln(a.out, serr.Message)
		} else {
			fmt.Fprintf(a.out, "Error al registrar: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Usuario registrado: %s. Ahora puedes iniciar sesión.\n", resp.User.Email)
	return nil
}

// Login exchanges credentials for a session.
func (a *App) Login(ctx context.Context) error {
	email, err := readLine(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := readPasswordLine("Contraseña", a.out)
	if err != nil {
		return err
	}

	u, err := a.sess.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Credenciales inválidas.")
		} else {
			fmt.Fprintf(a.out, "Error al iniciar sesión: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Bienvenido, %s\n", u.Nombre)
	return nil
}

// Logout ends the session. It always succeeds locally.
func (a *App) Logout(ctx context.Context) error {
	a.sess.Logout(ctx)
	fmt.Fprintln(a.out, "Sesión cerrada.")
	return nil
}

// Whoami prints the current session.
func (a *App) Whoami(ctx context.Context) error {
	u := a.sess.User()
	if u == nil {
		fmt.Fprintln(a.out, "Sin sesión activa.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> (%s)\n", u.Nombre, u.Email, u.Cargo)
	return nil
}
