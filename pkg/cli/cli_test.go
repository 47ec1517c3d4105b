// pkg/cli/cli_test.go

package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoundCommand(t *testing.T) (*cobra.Command, *viper.Viper) {
	t.Helper()

	cmd := &cobra.Command{Use: "test"}
	AddIntFlag(cmd, "length", "l", 12, "password length")
	AddBoolFlag(cmd, "no-upper", "", false, "exclude uppercase")
	AddStringFlag(cmd, "check", "", "", "hash to verify")

	v := viper.New()
	SetViperEnvPrefix(v, "SECUREPASS")
	require.NoError(t, BindFlagsToViper(cmd, v))
	return cmd, v
}

func TestFlagDefaultsReachViper(t *testing.T) {
	_, v := newBoundCommand(t)

	assert.Equal(t, 12, v.GetInt("length"))
	assert.False(t, v.GetBool("no-upper"))
	assert.Equal(t, "", v.GetString("check"))
}

func TestEnvOverridesDefault(t *testing.T) {
	t.Setenv("SECUREPASS_LENGTH", "20")
	t.Setenv("SECUREPASS_NO_UPPER", "true")

	_, v := newBoundCommand(t)

	assert.Equal(t, 20, v.GetInt("length"))
	assert.True(t, v.GetBool("no-upper"), "dashes in flag names must map to underscores")
}

func TestExplicitFlagBeatsEnv(t *testing.T) {
	t.Setenv("SECUREPASS_LENGTH", "20")

	cmd, v := newBoundCommand(t)
	require.NoError(t, cmd.Flags().Set("length", "8"))

	assert.Equal(t, 8, v.GetInt("length"))
}

func TestShorthandParses(t *testing.T) {
	cmd, v := newBoundCommand(t)

	require.NoError(t, cmd.ParseFlags([]string{"-l", "16"}))
	assert.Equal(t, 16, v.GetInt("length"))
}
