/* cmd/output.go */

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/securepass/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/securepass/pkg/strength"
)

var (
	styleHeader   = lipgloss.NewStyle().Bold(true)
	stylePassword = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
)

// renderPasswordBlock prints one generated password: bold header, the
// password in cyan, then the strength meter.
func renderPasswordBlock(logger otelzap.LoggerWithCtx, password string, level strength.Level) {
	logger.Info("terminal prompt:", zap.String("output", "\n"+styleHeader.Render("Generated Password:")))
	logger.Info("terminal prompt:", zap.String("output", stylePassword.Render(password)))
	renderStrength(logger, level)
}

func renderStrength(logger otelzap.LoggerWithCtx, level strength.Level) {
	logger.Info("terminal prompt:", zap.String("output", "\nPassword Strength:"))
	logger.Info("terminal prompt:", zap.String("output", strength.Render(level)))
}

func renderHashBlock(logger otelzap.LoggerWithCtx, hash string) {
	logger.Info("terminal prompt:", zap.String("output", "\n"+styleHeader.Render("Bcrypt Hash:")))
	logger.Info("terminal prompt:", zap.String("output", hash))
}

// renderSettings echoes the effective generation settings.
func renderSettings(logger otelzap.LoggerWithCtx, opts crypto.Options, count int) {
	logger.Info("terminal prompt:", zap.String("output", "\nSettings used:"))
	logger.Info("terminal prompt:", zap.String("output", fmt.Sprintf("  Length: %d", opts.Length)))
	if count > 1 {
		logger.Info("terminal prompt:", zap.String("output", fmt.Sprintf("  Count: %d", count)))
	}
	logger.Info("terminal prompt:", zap.String("output", "  Character types: "+categoryNames(opts)))
}

func categoryNames(opts crypto.Options) string {
	cats := opts.EnabledCategories()
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.String())
	}
	return strings.Join(names, " ")
}

func renderTip(logger otelzap.LoggerWithCtx) {
	logger.Info("terminal prompt:", zap.String("output", "\nTip: For maximum security, use passwords with at least 12 characters including all character types."))
}
