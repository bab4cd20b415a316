package typeid

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

// seqSuffix encodes the bytes 00 01 02 .. 0f.
const seqSuffix = "00041061050r3gg28a1c60t3gf"

// hexUUID and uuidSuffix are the same 128-bit value in both text forms.
const (
	hexUUID    = "01889c89-df6b-7f1c-a388-91396ec314bc"
	uuidSuffix = "01h2e8kqvbfwea724h75qc655w"
)

func TestNewUsesGeneratedValue(t *testing.T) {
	fixed := uuid.MustParse(hexUUID)
	newUUID = func() (uuid.UUID, error) { return fixed, nil }
	defer func() { newUUID = uuid.NewV7 }()

	id, err := New("user")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := id.String(); got != "user_"+uuidSuffix {
		t.Fatalf("got %q", got)
	}
}

func TestNewValidatesPrefixFirst(t *testing.T) {
	calls := 0
	newUUID = func() (uuid.UUID, error) { calls++; return uuid.UUID{}, nil }
	defer func() { newUUID = uuid.NewV7 }()

	if _, err := New("User"); !errors.Is(err, ErrInvalidPrefix) {
		t.Fatalf("got %v, want %v", err, ErrInvalidPrefix)
	}
	if calls != 0 {
		t.Fatalf("generated a value for an invalid prefix")
	}
}

func TestNewIsTimeOrdered(t *testing.T) {
	prev, err := New("job")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for i := 0; i < 100; i++ {
		next, err := New("job")
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		if prev.Compare(next) >= 0 {
			t.Fatalf("expected %s < %s", prev, next)
		}
		prev = next
	}
	if v := prev.UUID().Version(); v != 7 {
		t.Fatalf("value version %d, want 7", v)
	}
	if _, err := Parse(prev.String()); err != nil {
		t.Fatalf("generated identifier does not re-validate: %v", err)
	}
}

func TestErrorMessagesCarryDetail(t *testing.T) {
	_, err := FromSuffix("user", "abc")
	if err == nil || !strings.Contains(err.Error(), "3") {
		t.Fatalf("length message %v misses the actual length", err)
	}
	_, err = FromSuffix(strings.Repeat("a", 64), seqSuffix)
	if err == nil || !strings.Contains(err.Error(), "63") || !strings.Contains(err.Error(), "a-z") {
		t.Fatalf("prefix message %v misses the rule", err)
	}
	_, err = FromSuffix("user", "8"+strings.Repeat("0", 25))
	if err == nil || !strings.Contains(err.Error(), "0-7") {
		t.Fatalf("overflow message %v misses the first-character rule", err)
	}
}

func TestFromSuffixProjections(t *testing.T) {
	id, err := FromSuffix("order", seqSuffix)
	if err != nil {
		t.Fatalf("from suffix: %v", err)
	}
	if id.Prefix() != "order" {
		t.Fatalf("prefix %q", id.Prefix())
	}
	if id.Suffix() != seqSuffix {
		t.Fatalf("suffix %q", id.Suffix())
	}
	if got := id.String(); got != "order_"+seqSuffix {
		t.Fatalf("string %q", got)
	}
}

func TestEmptyPrefixDropsSeparator(t *testing.T) {
	id, err := FromSuffix("", seqSuffix)
	if err != nil {
		t.Fatalf("from suffix: %v", err)
	}
	if got := id.String(); got != seqSuffix {
		t.Fatalf("got %q, want bare suffix", got)
	}
}

func TestFromSuffixAcceptsBoundaryPrefixes(t *testing.T) {
	for _, prefix := range []string{"a", strings.Repeat("z", 63)} {
		if _, err := FromSuffix(prefix, seqSuffix); err != nil {
			t.Fatalf("prefix %q: %v", prefix, err)
		}
	}
}

func TestFromSuffixRejects(t *testing.T) {
	cases := []struct {
		name   string
		prefix string
		suffix string
		kind   error
	}{
		{"uppercase prefix", "User", seqSuffix, ErrInvalidPrefix},
		{"digit in prefix", "user1", seqSuffix, ErrInvalidPrefix},
		{"underscore in prefix", "user_", seqSuffix, ErrInvalidPrefix},
		{"hyphen in prefix", "user-name", seqSuffix, ErrInvalidPrefix},
		{"64 char prefix", strings.Repeat("a", 64), seqSuffix, ErrInvalidPrefix},
		{"empty suffix", "user", "", ErrSuffixLength},
		{"short suffix", "user", "abc", ErrSuffixLength},
		{"long suffix", "user", seqSuffix + "0", ErrSuffixLength},
		{"first char 8", "user", "8" + strings.Repeat("0", 25), ErrSuffixOverflow},
		{"first char z", "user", "z" + strings.Repeat("0", 25), ErrSuffixOverflow},
		{"first char u", "user", "u" + strings.Repeat("0", 25), ErrSuffixOverflow},
		{"excluded letter", "user", strings.Repeat("0", 25) + "i", ErrSuffixAlphabet},
		{"uppercase suffix", "user", "0" + strings.Repeat("A", 25), ErrSuffixAlphabet},
	}
	for _, tc := range cases {
		if _, err := FromSuffix(tc.prefix, tc.suffix); !errors.Is(err, tc.kind) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.kind)
		}
	}
}

func TestMust(t *testing.T) {
	id := Must(Parse("user_" + seqSuffix))
	if id.Prefix() != "user" {
		t.Fatalf("prefix %q", id.Prefix())
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Must(Parse("_" + seqSuffix))
}

func TestFromBytes(t *testing.T) {
	raw := make([]byte, 16)
	for i := range raw {
		raw[i] = byte(i)
	}
	id, err := FromBytes("item", raw)
	if err != nil {
		t.Fatalf("from bytes: %v", err)
	}
	if id.Suffix() != seqSuffix {
		t.Fatalf("suffix %q", id.Suffix())
	}
	if !bytes.Equal(id.Bytes(), raw) {
		t.Fatalf("bytes % x", id.Bytes())
	}

	if _, err := FromBytes("item", raw[:15]); err == nil {
		t.Fatalf("accepted 15 bytes")
	}
	if _, err := FromBytes("item", append(raw, 0)); err == nil {
		t.Fatalf("accepted 17 bytes")
	}
	if _, err := FromBytes("Bad", raw); !errors.Is(err, ErrInvalidPrefix) {
		t.Fatalf("got %v, want %v", err, ErrInvalidPrefix)
	}
}

func TestUUIDRoundTrip(t *testing.T) {
	id, err := FromUUIDString("user", hexUUID)
	if err != nil {
		t.Fatalf("from uuid string: %v", err)
	}
	if got := id.String(); got != "user_"+uuidSuffix {
		t.Fatalf("string %q", got)
	}
	if got := id.UUIDString(); got != hexUUID {
		t.Fatalf("uuid string %q", got)
	}

	u := uuid.MustParse(hexUUID)
	other, err := FromUUID("user", u)
	if err != nil {
		t.Fatalf("from uuid: %v", err)
	}
	if other != id {
		t.Fatalf("constructors disagree: %s vs %s", other, id)
	}
	if id.UUID() != u {
		t.Fatalf("uuid % x", id.UUID())
	}

	if _, err := FromUUIDString("user", "not-a-uuid"); err == nil {
		t.Fatalf("accepted malformed uuid")
	}
	if _, err := FromUUIDString("Bad", hexUUID); !errors.Is(err, ErrInvalidPrefix) {
		t.Fatalf("got %v, want %v", err, ErrInvalidPrefix)
	}
}

func TestCompareOrdersPrefixThenSuffix(t *testing.T) {
	a := Must(FromSuffix("alpha", seqSuffix))
	b := Must(FromSuffix("beta", seqSuffix))
	if a.Compare(b) >= 0 || b.Compare(a) <= 0 || a.Compare(a) != 0 {
		t.Fatalf("prefix ordering broken")
	}

	lo := Must(FromBytes("k", make([]byte, 16)))
	raw := make([]byte, 16)
	raw[15] = 1
	hi := Must(FromBytes("k", raw))
	if lo.Compare(hi) >= 0 {
		t.Fatalf("expected %s < %s", lo, hi)
	}
	if strings.Compare(lo.String(), hi.String()) >= 0 {
		t.Fatalf("canonical strings sort differently from Compare")
	}
}

func TestZeroValue(t *testing.T) {
	var zero TypeID
	if !zero.IsZero() {
		t.Fatalf("zero not zero")
	}
	if zero.String() != "" {
		t.Fatalf("zero string %q", zero.String())
	}
	if !bytes.Equal(zero.Bytes(), make([]byte, 16)) {
		t.Fatalf("zero bytes % x", zero.Bytes())
	}
	if id := Must(Parse("user_" + seqSuffix)); id.IsZero() {
		t.Fatalf("parsed identifier reported zero")
	}
}

var (
	idSink  TypeID
	strSink string
)

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		idSink, _ = New("user")
	}
}

func BenchmarkParse(b *testing.B) {
	s := "user_" + seqSuffix
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		idSink, _ = Parse(s)
	}
}

func BenchmarkString(b *testing.B) {
	id := Must(FromSuffix("user", seqSuffix))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		strSink = id.String()
	}
}
