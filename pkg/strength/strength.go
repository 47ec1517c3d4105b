// pkg/strength/strength.go

package strength

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/CodeMonkeyCybersecurity/securepass/pkg/crypto"
)

// Level is a coarse password strength rating from VeryWeak to
// VeryStrong. It is a usability heuristic, not an entropy measurement:
// it rewards length and category variety the same way the strength
// meter explains them to the user.
type Level int

const (
	VeryWeak Level = iota
	Weak
	Medium
	Strong
	VeryStrong
)

// String returns the label shown next to the strength meter.
func (l Level) String() string {
	switch l {
	case VeryWeak:
		return "Very Weak"
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

// Length thresholds for the two length bonuses.
const (
	bonusLengthMedium = 12
	bonusLengthLong   = 16
)

// Assess scores a password: one point per length threshold reached
// (12 and 16 characters) and one point per character category present,
// clamped to VeryStrong. Empty input is VeryWeak.
func Assess(password string) Level {
	score := 0

	if n := utf8.RuneCountInString(password); n >= bonusLengthMedium {
		score++
		if n >= bonusLengthLong {
			score++
		}
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(crypto.SymbolChars, r):
			hasSymbol = true
		}
	}
	for _, present := range []bool{hasUpper, hasLower, hasDigit, hasSymbol} {
		if present {
			score++
		}
	}

	if score > int(VeryStrong) {
		return VeryStrong
	}
	return Level(score)
}
