// pkg/crypto/generate.go

package crypto

import (
	"crypto/rand"
	"math/big"
	"strings"

	cerr "github.com/cockroachdb/errors"

	"github.com/CodeMonkeyCybersecurity/securepass/pkg/verify"
)

// Password length bounds. DefaultLength matches the security tip shown
// after generation: 12 characters with all categories enabled.
const (
	MinLength     = 6
	MaxLength     = 32
	DefaultLength = 12
)

var (
	// ErrNoCategories is returned when every character category has
	// been excluded, leaving nothing to draw from.
	ErrNoCategories = cerr.New("at least one character type must be selected")

	// ErrLengthOutOfRange is returned for lengths outside
	// [MinLength, MaxLength].
	ErrLengthOutOfRange = cerr.Newf("password length must be between %d and %d", MinLength, MaxLength)
)

// Options selects the length and character categories for generation.
// Only Length carries a validate tag; the category invariant (at least
// one enabled) is checked at generation time against the pool.
type Options struct {
	Length  int  `mapstructure:"length" validate:"min=6,max=32"`
	Upper   bool `mapstructure:"upper"`
	Lower   bool `mapstructure:"lower"`
	Digits  bool `mapstructure:"digits"`
	Symbols bool `mapstructure:"symbols"`
}

// DefaultOptions enables every category at the default length.
func DefaultOptions() Options {
	return Options{
		Length:  DefaultLength,
		Upper:   true,
		Lower:   true,
		Digits:  true,
		Symbols: true,
	}
}

// Validate checks the length bounds via struct tags.
func (o Options) Validate() error {
	if err := verify.Struct(o); err != nil {
		return cerr.WithDetailf(ErrLengthOutOfRange, "length %d: %v", o.Length, err)
	}
	return nil
}

// Pool assembles the draw pool in fixed category order: upper, lower,
// digits, symbols. Disabled categories are skipped; an empty pool means
// nothing was enabled.
func (o Options) Pool() string {
	var b strings.Builder
	if o.Upper {
		b.WriteString(UpperChars)
	}
	if o.Lower {
		b.WriteString(LowerChars)
	}
	if o.Digits {
		b.WriteString(DigitChars)
	}
	if o.Symbols {
		b.WriteString(SymbolChars)
	}
	return b.String()
}

// EnabledCategories returns the active categories in pool order, for
// the settings summary.
func (o Options) EnabledCategories() []Category {
	var cats []Category
	for _, c := range Categories {
		switch c {
		case CategoryUpper:
			if o.Upper {
				cats = append(cats, c)
			}
		case CategoryLower:
			if o.Lower {
				cats = append(cats, c)
			}
		case CategoryDigits:
			if o.Digits {
				cats = append(cats, c)
			}
		case CategorySymbols:
			if o.Symbols {
				cats = append(cats, c)
			}
		}
	}
	return cats
}

// Generate draws a password of o.Length characters uniformly from the
// enabled pool using crypto/rand. Every draw is independent: no
// category is guaranteed to appear, which keeps the distribution
// uniform across all possible passwords of that length.
func Generate(o Options) (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}

	pool := o.Pool()
	if pool == "" {
		return "", ErrNoCategories
	}

	pw := make([]byte, o.Length)
	for i := range pw {
		c, err := randomChar(pool)
		if err != nil {
			return "", cerr.Wrap(err, "entropy source failed")
		}
		pw[i] = c
	}

	return string(pw), nil
}

// randomChar picks one byte from charset with a uniform CSPRNG draw.
// rand.Int performs rejection sampling internally, so no modulo bias.
func randomChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
