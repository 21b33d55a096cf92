package logging_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/netcomp/internal/logging"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, logging.Level(0))
	assert.Equal(t, zerolog.InfoLevel, logging.Level(-2))
	assert.Equal(t, zerolog.DebugLevel, logging.Level(1))
	assert.Equal(t, zerolog.TraceLevel, logging.Level(5))
}

func TestConsole_NoColour(t *testing.T) {
	saved := log.Logger
	t.Cleanup(func() { log.Logger = saved })

	var buf bytes.Buffer
	logging.Console(&buf, true)
	logging.SetLevel(0)

	log.Debug().Msg("hidden")
	log.Info().Str("pair", "ex03").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "| INFO  |")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "pair=ex03")
	assert.Contains(t, out, "logging_test.go")
	assert.NotContains(t, out, "\x1b[")
}
