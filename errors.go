package typeid

import (
	"errors"

	"github.com/rzbill/typeid/internal/base32"
)

// Validation failure kinds. Constructors and parsers wrap them with the
// offending detail; match with errors.Is.
//
// The three suffix errors are the codec's own values, re-exported so that a
// failure surfaced by Parse or FromSuffix is the exact error the decoder
// produced.
var (
	// ErrInvalidPrefix reports a prefix longer than 63 characters or one
	// holding anything but lowercase ASCII letters a-z.
	ErrInvalidPrefix = errors.New("prefix must be at most 63 lowercase ASCII letters a-z")

	// ErrSuffixLength reports a suffix whose length is not exactly 26.
	ErrSuffixLength = base32.ErrLength

	// ErrSuffixOverflow reports a suffix starting beyond '7', which would
	// encode more than 128 bits.
	ErrSuffixOverflow = base32.ErrOverflow

	// ErrSuffixAlphabet reports a suffix character outside the encoding
	// alphabet, including uppercase letters and the excluded i, l, o, u.
	ErrSuffixAlphabet = base32.ErrAlphabet

	// ErrEmptyPrefix reports text that starts with the separator: an
	// identifier with an empty prefix is written without one.
	ErrEmptyPrefix = errors.New("empty prefix before separator")

	// ErrPrefixMismatch reports a parsed prefix that differs from the one
	// the caller required.
	ErrPrefixMismatch = errors.New("prefix mismatch")

	// ErrManySeparators reports text holding more than one underscore.
	ErrManySeparators = errors.New("more than one separator")
)
