// Package typeid implements compact, sortable, type-tagged identifiers: a
// lowercase prefix naming the kind of entity, a separator, and a
// 26-character suffix encoding a 128-bit time-ordered value.
//
// # Format
//
// The canonical text form is prefix_suffix; with an empty prefix it is the
// bare suffix:
//
//	user_01h2e8kqvbfwea724h75qc655w
//	01h2e8kqvbfwea724h75qc655w
//
// The prefix is 0-63 characters, each a-z. The suffix encodes exactly 16
// bytes in a 32-character lowercase alphabet (0-9 and a-z without i, l, o
// and u), most significant bits first; its first character is always 0-7
// because 26 five-bit groups carry two spare bits. One underscore at most
// appears in an identifier, and a leading underscore is never valid.
//
// The alphabet is in ascending byte order, so identifiers with equal
// prefixes sort by suffix, which is creation order for values from a
// time-ordered source. Sorting canonical strings, comparing with Compare
// and comparing raw values all agree.
//
// # Construction and parsing
//
//	// fresh identifier, time-ordered value
//	id, _ := typeid.New("user")
//
//	// round trip through the canonical form
//	again, _ := typeid.Parse(id.String())
//
//	// accept only one kind
//	id, err := typeid.ParseWithPrefix(s, "user")
//
//	// interop with hex UUID systems
//	id, _ = typeid.FromUUIDString("user", "01889c89-df6b-7f1c-a388-91396ec314bc")
//	hex := id.UUIDString()
//
// Suffixes are never normalized: decoding rejects uppercase and anything
// else outside the alphabet, and an encoded value has exactly one text
// form. All validation failures wrap one of the package's Err values;
// match them with errors.Is.
//
// # Compile-time tagging
//
// Typed[K] fixes the prefix in the type system, one marker type per kind:
//
//	type user struct{}
//
//	func (user) Prefix() string { return "user" }
//
//	uid, _ := typeid.NewTyped[user]()
//	uid2, err := typeid.ParseTyped[user](s) // ErrPrefixMismatch for other kinds
//
// TypeID and Typed marshal as canonical strings in text, JSON and SQL.
package typeid
