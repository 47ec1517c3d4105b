/* cmd/version.go */

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	secpass "github.com/CodeMonkeyCybersecurity/securepass/pkg/secpass_cli"
	"github.com/CodeMonkeyCybersecurity/securepass/pkg/shared"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the securepass version",
	Args:  cobra.NoArgs,
	RunE: secpass.Wrap(func(rc *secpass.RuntimeContext, cmd *cobra.Command, args []string) error {
		logger := otelzap.Ctx(rc.Ctx)
		logger.Info("terminal prompt:", zap.String("output",
			fmt.Sprintf("securepass %s (%s/%s)", shared.Version, runtime.GOOS, runtime.GOARCH)))
		return nil
	}),
}
