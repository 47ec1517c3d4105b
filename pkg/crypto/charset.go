// pkg/crypto/charset.go

package crypto

// Character categories a password can draw from. SymbolChars is the
// full ASCII punctuation range, all 32 characters.
const (
	UpperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowerChars  = "abcdefghijklmnopqrstuvwxyz"
	DigitChars  = "0123456789"
	SymbolChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Category identifies one of the four character classes.
type Category int

const (
	CategoryUpper Category = iota
	CategoryLower
	CategoryDigits
	CategorySymbols
)

// Categories in pool order. The order is fixed: upper, lower, digits,
// symbols.
var Categories = []Category{CategoryUpper, CategoryLower, CategoryDigits, CategorySymbols}

// Chars returns the category's character set.
func (c Category) Chars() string {
	switch c {
	case CategoryUpper:
		return UpperChars
	case CategoryLower:
		return LowerChars
	case CategoryDigits:
		return DigitChars
	case CategorySymbols:
		return SymbolChars
	default:
		return ""
	}
}

// String returns the category's display name as shown in the settings
// summary.
func (c Category) String() string {
	switch c {
	case CategoryUpper:
		return "Uppercase"
	case CategoryLower:
		return "Lowercase"
	case CategoryDigits:
		return "Numbers"
	case CategorySymbols:
		return "Symbols"
	default:
		return "Unknown"
	}
}
