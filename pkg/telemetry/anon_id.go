// pkg/telemetry/anon_id.go

package telemetry

import (
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/CodeMonkeyCybersecurity/securepass/pkg/shared"
)

// AnonID returns a stable random identifier for this installation,
// created on first use. It carries no user information; it only lets
// span counts be grouped per machine when someone inspects their own
// telemetry file.
func AnonID() string {
	path := shared.StatePath(shared.TelemetryIDFile)

	if data, err := os.ReadFile(path); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id
		}
	}

	id := "anon-" + uuid.New().String()
	_ = shared.EnsureParentDir(path)
	_ = os.WriteFile(path, []byte(id), shared.FilePermOwnerReadWrite)

	return id
}
