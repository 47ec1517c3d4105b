// pkg/secpass_cli/types.go

package secpass_cli

import (
	"github.com/CodeMonkeyCybersecurity/securepass/pkg/secpass_io"
)

// RuntimeContext is re-exported so command files only need the one
// import for both Wrap and the handler signature.
type RuntimeContext = secpass_io.RuntimeContext
