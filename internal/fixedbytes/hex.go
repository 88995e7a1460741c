package fixedbytes

import (
	"encoding/hex"

	"github.com/cockroachdb/errors"
)

// HexCodec converts values to and from "0x" followed by 2N lowercase hex digits.
// Decoding accepts any letter case and an optional 0x or 0X prefix.
type HexCodec[W Width] struct{}

func (HexCodec[W]) Encode(value FixedBytes[W]) string {
	buf := make([]byte, 2+2*size[W]())
	buf[0], buf[1] = '0', 'x'
	hex.Encode(buf[2:], value.Bytes())
	return string(buf)
}

func (HexCodec[W]) Decode(text string) (FixedBytes[W], error) {
	return FromHex[W](text)
}

func (HexCodec[W]) DecodeBytes(text []byte) (FixedBytes[W], error) {
	return FromHex[W](string(text))
}

func FromHex[W Width](text string) (FixedBytes[W], error) {
	digits := text
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}

	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return FixedBytes[W]{}, errors.Wrapf(ErrInvalidHexDigit, "character %q at offset %d", digits[i], i)
		}
	}

	n := size[W]()
	if len(digits) != 2*n {
		return FixedBytes[W]{}, errors.Wrapf(ErrInvalidHexLength, "got %d hex digits, want %d", len(digits), 2*n)
	}

	b := make([]byte, n)
	if _, err := hex.Decode(b, []byte(digits)); err != nil {
		return FixedBytes[W]{}, errors.Wrapf(ErrInvalidHexDigit, "%v", err)
	}

	return fromBytes[W](b), nil
}

func MustFromHex[W Width](text string) FixedBytes[W] {
	value, err := FromHex[W](text)
	if err != nil {
		panic(err)
	}
	return value
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
