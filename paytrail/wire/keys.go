package wire

import (
	"strings"
	"unicode"
)

// KeyMapper rewrites a camelCase field name into its wire form.
type KeyMapper func(name string) string

// Camel leaves names untouched.
func Camel(name string) string { return name }

// Dashed turns checkoutRedirectSuccessUrl into checkout-redirect-success-url.
func Dashed(name string) string { return separate(name, '-') }

// Snake turns partialPan into partial_pan.
func Snake(name string) string { return separate(name, '_') }

func separate(name string, sep rune) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteRune(sep)
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeKey folds camel, dashed and snake spellings of the same name to
// one form, used when decoding provider payloads.
func NormalizeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range key {
		if r == '_' || r == '-' {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
