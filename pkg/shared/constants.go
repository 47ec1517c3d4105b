// pkg/shared/constants.go

package shared

const (
	// AppID is the canonical application name, used for state paths,
	// telemetry service naming, and the environment variable prefix.
	AppID = "securepass"

	// EnvPrefix namespaces environment overrides, e.g. SECUREPASS_LENGTH.
	EnvPrefix = "SECUREPASS"
)

const (
	LogFileName = AppID + ".log"
	// #nosec G101 - This is a log file path, not a hardcoded credential
	FallbackLogPath = "./" + AppID + ".log"

	TelemetryFileName   = "telemetry.jsonl"
	TelemetryIDFile     = "telemetry_id"
	TelemetryMarkerFile = "telemetry_on"
)

const (
	// Permission modes (in octal)
	DirPermStandard        = 0755
	DirPermPrivate         = 0700
	FilePermStandard       = 0644
	FilePermOwnerReadWrite = 0600
)
