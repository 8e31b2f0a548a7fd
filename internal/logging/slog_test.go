package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info")
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	log.Info(ctx, "visible", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "k=v")
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "whatever")

	log.Debug(context.Background(), "hidden")
	assert.Empty(t, buf.String())
}

func TestWith_PropagatesFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info").With("component", "api")

	log.Info(context.Background(), "call")
	assert.Contains(t, buf.String(), "component=api")
}
