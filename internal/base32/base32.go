package base32

import (
	"errors"
	"fmt"
)

// Alphabet is the full encoding alphabet in encoding order.
const Alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

const (
	// EncodedLen is the length of every encoded value.
	EncodedLen = 26

	// RawLen is the length of every decoded value.
	RawLen = 16
)

// Decode failure kinds. Decode wraps them with the offending detail; match
// with errors.Is.
var (
	ErrLength   = errors.New("encoded length must be 26")
	ErrAlphabet = errors.New("character outside the base32 alphabet")
	ErrOverflow = errors.New("value overflows 128 bits, first character must be 0-7")
)

// dec maps an input byte to its value in the alphabet, or 0xFF for bytes
// outside it. Uppercase bytes stay outside: only the canonical lowercase
// form decodes.
var dec = func() (t [256]byte) {
	for i := range t {
		t[i] = 0xFF
	}
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = byte(i)
	}
	return t
}()

// Encode returns the 26-character text form of v, most significant bits
// first. The first character only ever uses the top three bits of v[0], so
// it lands in 0-7.
func Encode(v [16]byte) string {
	var dst [EncodedLen]byte

	dst[0] = Alphabet[(v[0]&224)>>5]
	dst[1] = Alphabet[v[0]&31]
	dst[2] = Alphabet[(v[1]&248)>>3]
	dst[3] = Alphabet[((v[1]&7)<<2)|((v[2]&192)>>6)]
	dst[4] = Alphabet[(v[2]&62)>>1]
	dst[5] = Alphabet[((v[2]&1)<<4)|((v[3]&240)>>4)]
	dst[6] = Alphabet[((v[3]&15)<<1)|((v[4]&128)>>7)]
	dst[7] = Alphabet[(v[4]&124)>>2]
	dst[8] = Alphabet[((v[4]&3)<<3)|((v[5]&224)>>5)]
	dst[9] = Alphabet[v[5]&31]
	dst[10] = Alphabet[(v[6]&248)>>3]
	dst[11] = Alphabet[((v[6]&7)<<2)|((v[7]&192)>>6)]
	dst[12] = Alphabet[(v[7]&62)>>1]
	dst[13] = Alphabet[((v[7]&1)<<4)|((v[8]&240)>>4)]
	dst[14] = Alphabet[((v[8]&15)<<1)|((v[9]&128)>>7)]
	dst[15] = Alphabet[(v[9]&124)>>2]
	dst[16] = Alphabet[((v[9]&3)<<3)|((v[10]&224)>>5)]
	dst[17] = Alphabet[v[10]&31]
	dst[18] = Alphabet[(v[11]&248)>>3]
	dst[19] = Alphabet[((v[11]&7)<<2)|((v[12]&192)>>6)]
	dst[20] = Alphabet[(v[12]&62)>>1]
	dst[21] = Alphabet[((v[12]&1)<<4)|((v[13]&240)>>4)]
	dst[22] = Alphabet[((v[13]&15)<<1)|((v[14]&128)>>7)]
	dst[23] = Alphabet[(v[14]&124)>>2]
	dst[24] = Alphabet[((v[14]&3)<<3)|((v[15]&224)>>5)]
	dst[25] = Alphabet[v[15]&31]

	return string(dst[:])
}

// Decode converts the 26-character text form back into the 16 bytes it
// encodes. It validates before assembling: the length must be exactly 26,
// every character must be in the alphabet, and the first character must be
// 0-7. Failures wrap ErrLength, ErrAlphabet or ErrOverflow.
func Decode(s string) ([16]byte, error) {
	var v [16]byte

	if len(s) != EncodedLen {
		return v, fmt.Errorf("length %d: %w", len(s), ErrLength)
	}
	for i := 0; i < EncodedLen; i++ {
		if dec[s[i]] == 0xFF {
			return v, fmt.Errorf("character %q at index %d: %w", s[i], i, ErrAlphabet)
		}
	}
	if dec[s[0]] > 7 {
		return v, fmt.Errorf("first character %q: %w", s[0], ErrOverflow)
	}

	v[0] = dec[s[0]]<<5 | dec[s[1]]
	v[1] = dec[s[2]]<<3 | dec[s[3]]>>2
	v[2] = dec[s[3]]<<6 | dec[s[4]]<<1 | dec[s[5]]>>4
	v[3] = dec[s[5]]<<4 | dec[s[6]]>>1
	v[4] = dec[s[6]]<<7 | dec[s[7]]<<2 | dec[s[8]]>>3
	v[5] = dec[s[8]]<<5 | dec[s[9]]
	v[6] = dec[s[10]]<<3 | dec[s[11]]>>2
	v[7] = dec[s[11]]<<6 | dec[s[12]]<<1 | dec[s[13]]>>4
	v[8] = dec[s[13]]<<4 | dec[s[14]]>>1
	v[9] = dec[s[14]]<<7 | dec[s[15]]<<2 | dec[s[16]]>>3
	v[10] = dec[s[16]]<<5 | dec[s[17]]
	v[11] = dec[s[18]]<<3 | dec[s[19]]>>2
	v[12] = dec[s[19]]<<6 | dec[s[20]]<<1 | dec[s[21]]>>4
	v[13] = dec[s[21]]<<4 | dec[s[22]]>>1
	v[14] = dec[s[22]]<<7 | dec[s[23]]<<2 | dec[s[24]]>>3
	v[15] = dec[s[24]]<<5 | dec[s[25]]

	return v, nil
}
