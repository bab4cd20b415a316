package typeid

// Kind fixes an identifier's prefix at compile time. Implement it on a
// small marker type, one per kind of entity:
//
//	type user struct{}
//
//	func (user) Prefix() string { return "user" }
//
// Typed[user] then only ever holds user identifiers, and mixing kinds is a
// type error rather than a runtime surprise.
type Kind interface {
	Prefix() string
}

// Typed wraps a TypeID whose prefix is the one K declares. The zero
// Typed[K] wraps the zero TypeID. Beyond the prefix guarantee it adds no
// behavior of its own.
type Typed[K Kind] struct {
	id TypeID
}

// kindPrefix reads the prefix K declares.
func kindPrefix[K Kind]() string {
	var k K
	return k.Prefix()
}

// NewTyped generates a fresh identifier of kind K.
func NewTyped[K Kind]() (Typed[K], error) {
	id, err := New(kindPrefix[K]())
	if err != nil {
		return Typed[K]{}, err
	}
	return Typed[K]{id: id}, nil
}

// FromSuffixTyped builds an identifier of kind K from an encoded suffix.
func FromSuffixTyped[K Kind](suffix string) (Typed[K], error) {
	id, err := FromSuffix(kindPrefix[K](), suffix)
	if err != nil {
		return Typed[K]{}, err
	}
	return Typed[K]{id: id}, nil
}

// ParseTyped parses canonical text and requires the prefix K declares,
// reporting ErrPrefixMismatch for any other kind.
func ParseTyped[K Kind](s string) (Typed[K], error) {
	id, err := ParseWithPrefix(s, kindPrefix[K]())
	if err != nil {
		return Typed[K]{}, err
	}
	return Typed[K]{id: id}, nil
}

// MustTyped returns t or panics if err is non-nil:
//
//	u := typeid.MustTyped(typeid.ParseTyped[user](s))
func MustTyped[K Kind](t Typed[K], err error) Typed[K] {
	if err != nil {
		panic(err)
	}
	return t
}

// Unwrap returns the plain TypeID.
func (t Typed[K]) Unwrap() TypeID { return t.id }

// String returns the canonical text form.
func (t Typed[K]) String() string { return t.id.String() }

// Prefix returns the wrapped identifier's prefix: the one K declares, or
// empty for the zero Typed.
func (t Typed[K]) Prefix() string { return t.id.prefix }

// Suffix returns the 26-character encoded suffix.
func (t Typed[K]) Suffix() string { return t.id.suffix }

// IsZero reports whether t wraps the zero TypeID.
func (t Typed[K]) IsZero() bool { return t.id.IsZero() }

// MarshalText returns the canonical text form. encoding/json uses it too,
// so Typed fields marshal as JSON strings without further methods.
func (t Typed[K]) MarshalText() ([]byte, error) {
	return t.id.MarshalText()
}

// UnmarshalText parses canonical text and requires the prefix K declares.
func (t *Typed[K]) UnmarshalText(b []byte) error {
	id, err := ParseTyped[K](string(b))
	if err != nil {
		return err
	}
	*t = id
	return nil
}
