package huffman

import (
	"strconv"
	"unicode/utf8"
)

// Symbol represents a symbol in the text alphabet, i.e. one rune.
// Negative symbols are not valid.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(utf8.MaxRune)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true if this Symbol can be encoded as UTF-8.
func (s Symbol) IsValid() bool {
	return s >= 0 && utf8.ValidRune(rune(s))
}

// String returns the Go-quoted form of this Symbol, e.g. 'a'.
func (s Symbol) String() string {
	if s == InvalidSymbol {
		return "InvalidSymbol"
	}
	return strconv.QuoteRune(rune(s))
}
