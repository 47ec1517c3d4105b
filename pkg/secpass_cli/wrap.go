// pkg/secpass_cli/wrap.go

package secpass_cli

import (
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/CodeMonkeyCybersecurity/securepass/pkg/secpass_err"
	"github.com/CodeMonkeyCybersecurity/securepass/pkg/secpass_io"
)

// Wrap adapts a RuntimeContext handler to cobra's RunE signature and
// gives every command the same lifecycle: traced context, panic
// recovery, outcome logging, and stack capture on unexpected errors.
// Expected user errors pass through untouched so the CLI can render
// them as plain messages rather than bug reports.
func Wrap(fn func(rc *secpass_io.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		rc := secpass_io.NewContext(cmd.Context(), cmd.Name())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)

		err = fn(rc, cmd, args)
		if err != nil && !secpass_err.IsExpectedUserError(err) {
			err = cerr.WithStack(err)
		}
		return err
	}
}
