package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWatchCmd(t *testing.T) {
	cmd := newWatchCmd()

	assert.Equal(t, "watch", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	// watch shares the session flags with run
	for _, name := range []string{"passes", "parallel", "seed", "mode", "max-size", "out", "config", "shape"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
