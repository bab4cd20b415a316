// Package base32 implements the fixed-width encoding between 16-byte values
// and their 26-character text form.
//
// The alphabet is the 32 characters 0-9 and a-z with i, l, o and u removed,
// in ascending byte order, so encoded strings sort the same way as the raw
// bytes they encode. Encoding is canonical: every value has exactly one text
// form, and only that form decodes. Uppercase input is rejected, not folded.
//
// 26 five-bit groups carry 130 bits for a 128-bit value. The two spare bits
// lead, and are always zero, which pins the first character of every encoded
// value to 0-7.
package base32
