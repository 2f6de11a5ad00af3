package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesModuleField(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cpd.log")
	c, err := Setup(p, "debug")
	require.NoError(t, err)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	For("course").Info().Str("code", "MCTR").Msg("loaded")
	require.NoError(t, c.Close())

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"module":"course"`)
	assert.Contains(t, string(b), `"code":"MCTR"`)
	assert.Contains(t, string(b), `"message":"loaded"`)
}

func TestSetupBadLevel(t *testing.T) {
	_, err := Setup("", "loud")
	assert.Error(t, err)
}

func TestSetupDiscard(t *testing.T) {
	c, err := Setup("", "info")
	require.NoError(t, err)
	For("tui").Info().Msg("dropped")
	assert.NoError(t, c.Close())
}
