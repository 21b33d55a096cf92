package resistance_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netcomp/builder"
	"github.com/katalvlaran/netcomp/resistance"
)

// TestMain keeps the package's debug events off the test output.
func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

// TestRawMatrix_LogsOnlyAtDebug swaps the global logger, so it must not run
// in parallel.
func TestRawMatrix_LogsOnlyAtDebug(t *testing.T) {
	var buf bytes.Buffer
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})
	a := adjacency(t, builder.Path(2), builder.Shifted(2, builder.Empty(1)))

	_, err := resistance.RawMatrix(a)
	require.NoError(t, err)
	assert.Empty(t, buf.String(), "nothing below info is written")

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	_, err = resistance.RawMatrix(a)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "disconnected")
}
