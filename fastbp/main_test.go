package fastbp_test

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
)

// TestMain keeps the package's debug events off the test output.
func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}
