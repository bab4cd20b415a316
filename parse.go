package typeid

import (
	"fmt"
	"strings"

	"github.com/rzbill/typeid/internal/base32"
)

// split divides canonical text into its prefix and suffix parts without
// validating either. The separator count alone decides the shape: none
// means an empty prefix, one splits the string, more is malformed.
func split(s string) (prefix, suffix string, err error) {
	switch strings.Count(s, "_") {
	case 0:
		return "", s, nil
	case 1:
		prefix, suffix, _ = strings.Cut(s, "_")
		if prefix == "" {
			return "", "", ErrEmptyPrefix
		}
		return prefix, suffix, nil
	default:
		return "", "", fmt.Errorf("%q: %w", s, ErrManySeparators)
	}
}

// Parse converts canonical text back into a TypeID. Text without a
// separator is treated as a bare suffix with an empty prefix. Parse of a
// String result always returns the identical identifier.
func Parse(s string) (TypeID, error) {
	prefix, suffix, err := split(s)
	if err != nil {
		return TypeID{}, err
	}
	return FromSuffix(prefix, suffix)
}

// ParseWithPrefix is Parse for callers that know which kind of identifier
// they expect. The parsed prefix must equal prefix exactly, and the check
// runs before suffix validation so a wrong kind is reported as a mismatch
// rather than a malformed suffix. An empty prefix requires bare-suffix
// text.
func ParseWithPrefix(s, prefix string) (TypeID, error) {
	p, suffix, err := split(s)
	if err != nil {
		return TypeID{}, err
	}
	if p != prefix {
		return TypeID{}, fmt.Errorf("prefix %q, expected %q: %w", p, prefix, ErrPrefixMismatch)
	}
	return FromSuffix(p, suffix)
}

// IsValid reports whether s is a prefixed identifier in canonical form:
// a 1-63 character lowercase prefix, the separator, and a decodable suffix.
//
// IsValid is deliberately narrower than Parse. A bare 26-character suffix
// is a valid empty-prefix identifier for Parse, but IsValid reports false
// for it; use Parse when both shapes are acceptable.
func IsValid(s string) bool {
	sep := strings.IndexByte(s, '_')
	if sep < 1 || sep > 63 {
		return false
	}
	for i := 0; i < sep; i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	_, err := base32.Decode(s[sep+1:])
	return err == nil
}
