/* cmd/assess.go */

package cmd

import (
	"errors"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	secpass "github.com/CodeMonkeyCybersecurity/securepass/pkg/secpass_cli"
	"github.com/CodeMonkeyCybersecurity/securepass/pkg/secpass_err"
	"github.com/CodeMonkeyCybersecurity/securepass/pkg/secpass_io"
	"github.com/CodeMonkeyCybersecurity/securepass/pkg/strength"
)

// AssessCmd rates an existing password with the same heuristic used
// for generated ones. The password itself is never logged.
var AssessCmd = &cobra.Command{
	Use:   "assess [password]",
	Short: "Assess the strength of an existing password",
	Long: `Rates a password on the five-level strength meter without generating
anything. Pass the password as an argument, or run with no argument to
be prompted for it with echo disabled.

Examples:
  securepass assess 'Tr0ub4dor&3'
  securepass assess                # prompted, input hidden`,
	Args: cobra.MaximumNArgs(1),
	RunE: secpass.Wrap(runAssess),
}

func runAssess(rc *secpass.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		var err error
		password, err = secpass_io.PromptSecurePassword(rc, "Password to assess: ")
		if err != nil {
			return classifyInputError(err)
		}
	}

	level := strength.Assess(password)

	logger.Info("Password assessed",
		zap.Int("length", utf8.RuneCountInString(password)),
		zap.String("strength", level.String()))
	rc.Attributes["strength"] = level.String()

	renderStrength(logger, level)
	return nil
}

// classifyInputError treats anything the user can fix, like running in
// a pipe or entering an empty password, as an expected error.
func classifyInputError(err error) error {
	var verr *secpass_io.InputValidationError
	if errors.Is(err, secpass_io.ErrNotATerminal) || errors.As(err, &verr) {
		return secpass_err.NewExpectedError(err)
	}
	return err
}
