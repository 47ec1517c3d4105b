// pkg/secpass_io/secure_input.go

package secpass_io

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// MaxPasswordLength caps interactive password input. Nothing sensible
// needs more, and an unbounded read is an easy way to wedge a terminal.
const MaxPasswordLength = 256

// ErrNotATerminal is returned when interactive input is requested but
// stdin is a pipe or file.
var ErrNotATerminal = fmt.Errorf("stdin is not a terminal")

// InputValidationError reports why interactive input was rejected. The
// offending input itself is never stored.
type InputValidationError struct {
	Field  string
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid input for %s: %s", e.Field, e.Reason)
}

// PromptSecurePassword prompts for a password without echoing it to the
// screen. The prompt itself goes through the terminal core so it stays
// visible under quiet logging.
func PromptSecurePassword(rc *RuntimeContext, prompt string) (string, error) {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS - Check if we can read from terminal
	logger.Debug("Assessing secure password input capability")

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", ErrNotATerminal
	}

	// INTERVENE - Read password securely
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println() // Add newline after password input

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	passwordStr := string(password)

	// EVALUATE - Validate password input
	if err := validatePasswordInput(passwordStr, "password"); err != nil {
		logger.Warn("Invalid password input", zap.Error(err))
		return "", err
	}

	logger.Debug("Successfully read secure password input")
	return passwordStr, nil
}

// validatePasswordInput rejects input that cannot be a real password:
// empty strings, oversized input, broken UTF-8, and control characters
// that could manipulate the terminal when echoed back.
func validatePasswordInput(password, fieldName string) error {
	if len(password) == 0 {
		return &InputValidationError{Field: fieldName, Reason: "cannot be empty"}
	}

	if len(password) > MaxPasswordLength {
		return &InputValidationError{
			Field:  fieldName,
			Reason: fmt.Sprintf("too long (%d chars, max %d)", len(password), MaxPasswordLength),
		}
	}

	if !utf8.ValidString(password) {
		return &InputValidationError{Field: fieldName, Reason: "contains invalid UTF-8 sequences"}
	}

	if strings.Contains(password, "\x00") {
		return &InputValidationError{Field: fieldName, Reason: "contains null bytes"}
	}

	for _, r := range password {
		if r < 32 && r != '\t' {
			return &InputValidationError{Field: fieldName, Reason: "contains control characters"}
		}
		if r >= 127 && r <= 159 {
			return &InputValidationError{Field: fieldName, Reason: "contains C1 control characters"}
		}
	}

	return nil
}
