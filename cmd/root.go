/* cmd/root.go */

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/securepass/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/securepass/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/securepass/pkg/logger"
	secpass "github.com/CodeMonkeyCybersecurity/securepass/pkg/secpass_cli"
	"github.com/CodeMonkeyCybersecurity/securepass/pkg/secpass_err"
	"github.com/CodeMonkeyCybersecurity/securepass/pkg/shared"
)

var helpLogged bool // global guard to log help only once

// vip layers SECUREPASS_* environment variables over flag defaults.
// Explicit flags always win.
var vip = viper.New()

// RootCmd is the base command. Running securepass with no subcommand
// generates a password.
var RootCmd = &cobra.Command{
	Use:   "securepass",
	Short: "Professional password generator",
	Long: `SecurePass - Professional Password Generator

Generates cryptographically secure random passwords from a configurable
character set and rates each one on a five-level strength meter.

Examples:
  securepass                     # 12 characters, all character types
  securepass -l 16 --no-symbols  # longer, but letters and numbers only
  securepass -n 5                # five passwords in one run
  securepass assess              # rate a password you already have
  securepass hash --cost 12      # generate and bcrypt-hash a password`,
	Args: cobra.NoArgs,
	RunE: secpass.Wrap(runGenerate),
}

// HelpCmd wraps help so that it can be invoked like a normal command.
var HelpCmd = &cobra.Command{
	Use:   "help",
	Short: "Help about any command",
	Long:  "Displays help for securepass or a specific subcommand.",
	RunE: secpass.Wrap(func(rc *secpass.RuntimeContext, cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return RootCmd.Help()
		}
		c, _, err := RootCmd.Find(args)
		if err != nil || c == nil {
			return secpass_err.NewExpectedError(fmt.Errorf("command not found: %s", strings.Join(args, " ")))
		}
		return c.Help()
	}),
}

func init() {
	cli.AddIntFlag(RootCmd, "length", "l", crypto.DefaultLength, "Password length (6-32)")
	cli.AddBoolFlag(RootCmd, "no-upper", "", false, "Exclude uppercase letters")
	cli.AddBoolFlag(RootCmd, "no-lower", "", false, "Exclude lowercase letters")
	cli.AddBoolFlag(RootCmd, "no-numbers", "", false, "Exclude numbers")
	cli.AddBoolFlag(RootCmd, "no-symbols", "", false, "Exclude symbols")
	cli.AddIntFlag(RootCmd, "count", "n", 1, "Number of passwords to generate")
	cli.AddBoolFlag(RootCmd, "hash", "", false, "Also print a bcrypt hash of each password")

	cli.SetViperEnvPrefix(vip, shared.EnvPrefix)
	if err := cli.BindFlagsToViper(RootCmd, vip); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to bind flags: %v\n", err)
	}
}

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands() {
	RootCmd.SetHelpCommand(HelpCmd)

	log := logger.L()

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if !helpLogged {
			log.Info("Help triggered via --help or -h", zap.String("command", cmd.Name()))
			helpLogged = true
		}
		if long := strings.TrimSpace(cmd.Long); long != "" {
			fmt.Fprintln(cmd.OutOrStdout(), long)
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
	})

	for _, subCmd := range []*cobra.Command{
		AssessCmd,
		HashCmd,
		VersionCmd,
	} {
		RootCmd.AddCommand(subCmd)
	}
}

// Execute initializes and runs the root command. Help exits 0; any
// error, whether a user mistake or a system failure, exits 1.
func Execute() {
	defer logger.Sync()

	logger.L().Info("securepass starting", zap.String("version", shared.Version))

	RegisterCommands()

	if err := RootCmd.Execute(); err != nil {
		if secpass_err.IsExpectedUserError(err) {
			logger.L().Warn("Command completed with user error", zap.Error(err))
		} else {
			logger.L().Error("Command execution error", zap.Error(err))
		}
		os.Exit(secpass_err.ExitCode(err))
	}
}
