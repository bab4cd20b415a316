package typeid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rzbill/typeid/internal/base32"
)

// TypeID is a type-tagged identifier: a prefix naming the kind of entity and
// a 26-character suffix encoding a 128-bit value. The zero TypeID has an
// empty prefix and an empty suffix and is not a valid identifier.
//
// TypeID is an immutable value type. It is comparable, usable as a map key,
// and safe to copy and share.
type TypeID struct {
	prefix string
	suffix string
}

// newUUID supplies the 128-bit time-ordered value behind New. Swappable in
// tests.
var newUUID = uuid.NewV7

// New generates an identifier with the given prefix and a fresh
// time-ordered value, so identifiers sharing a prefix sort by creation
// time.
func New(prefix string) (TypeID, error) {
	if err := validatePrefix(prefix); err != nil {
		return TypeID{}, err
	}
	u, err := newUUID()
	if err != nil {
		return TypeID{}, fmt.Errorf("generate value: %w", err)
	}
	return TypeID{prefix: prefix, suffix: base32.Encode(u)}, nil
}

// FromSuffix builds an identifier from a prefix and an already encoded
// suffix. The prefix is checked first, then the suffix length, then its
// first character, and finally every character against the alphabet, so the
// reported error names the first rule violated.
func FromSuffix(prefix, suffix string) (TypeID, error) {
	if err := validatePrefix(prefix); err != nil {
		return TypeID{}, err
	}
	if len(suffix) != base32.EncodedLen {
		return TypeID{}, fmt.Errorf("suffix length %d: %w", len(suffix), ErrSuffixLength)
	}
	if suffix[0] > '7' {
		return TypeID{}, fmt.Errorf("suffix starts with %q: %w", suffix[0], ErrSuffixOverflow)
	}
	if _, err := base32.Decode(suffix); err != nil {
		return TypeID{}, err
	}
	return TypeID{prefix: prefix, suffix: suffix}, nil
}

// FromBytes builds an identifier from a prefix and the raw 16-byte value.
func FromBytes(prefix string, b []byte) (TypeID, error) {
	if err := validatePrefix(prefix); err != nil {
		return TypeID{}, err
	}
	if len(b) != base32.RawLen {
		return TypeID{}, fmt.Errorf("value is %d bytes, want %d", len(b), base32.RawLen)
	}
	var v [16]byte
	copy(v[:], b)
	return TypeID{prefix: prefix, suffix: base32.Encode(v)}, nil
}

// FromUUID builds an identifier carrying u's 16 bytes.
func FromUUID(prefix string, u uuid.UUID) (TypeID, error) {
	if err := validatePrefix(prefix); err != nil {
		return TypeID{}, err
	}
	return TypeID{prefix: prefix, suffix: base32.Encode(u)}, nil
}

// FromUUIDString builds an identifier from a prefix and a hex-and-dash UUID
// string.
func FromUUIDString(prefix, s string) (TypeID, error) {
	if err := validatePrefix(prefix); err != nil {
		return TypeID{}, err
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return TypeID{}, fmt.Errorf("parse uuid: %w", err)
	}
	return TypeID{prefix: prefix, suffix: base32.Encode(u)}, nil
}

// Must returns id or panics if err is non-nil. Use for identifiers known to
// be well formed:
//
//	id := typeid.Must(typeid.Parse("user_01h2e8kqvbfwea724h75qc655w"))
func Must(id TypeID, err error) TypeID {
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the canonical text form: prefix, separator, suffix. When
// the prefix is empty the separator is dropped and the form is the bare
// suffix.
func (id TypeID) String() string {
	if id.prefix == "" {
		return id.suffix
	}
	return id.prefix + "_" + id.suffix
}

// Prefix returns the prefix, empty for untagged identifiers.
func (id TypeID) Prefix() string { return id.prefix }

// Suffix returns the 26-character encoded suffix.
func (id TypeID) Suffix() string { return id.suffix }

// Bytes returns the 16-byte value the suffix encodes. The zero TypeID
// yields 16 zero bytes.
func (id TypeID) Bytes() []byte {
	v, _ := base32.Decode(id.suffix)
	return v[:]
}

// UUID returns the value as a UUID.
func (id TypeID) UUID() uuid.UUID {
	v, _ := base32.Decode(id.suffix)
	return v
}

// UUIDString returns the value in hex-and-dash UUID form.
func (id TypeID) UUIDString() string {
	return id.UUID().String()
}

// Compare orders identifiers byte-wise over their canonical form: by prefix
// first, then by suffix. It returns -1, 0 or 1 like strings.Compare.
func (id TypeID) Compare(other TypeID) int {
	if c := strings.Compare(id.prefix, other.prefix); c != 0 {
		return c
	}
	return strings.Compare(id.suffix, other.suffix)
}

// IsZero reports whether id is the zero TypeID.
func (id TypeID) IsZero() bool {
	return id == TypeID{}
}

// validatePrefix enforces the prefix rule: at most 63 bytes, each in a-z.
// The empty prefix is valid.
func validatePrefix(prefix string) error {
	if len(prefix) > 63 {
		return fmt.Errorf("prefix %q: %w", prefix, ErrInvalidPrefix)
	}
	for i := 0; i < len(prefix); i++ {
		if prefix[i] < 'a' || prefix[i] > 'z' {
			return fmt.Errorf("prefix %q: %w", prefix, ErrInvalidPrefix)
		}
	}
	return nil
}
