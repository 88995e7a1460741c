package fixedbytes

import (
	"bytes"
	"fmt"
	"strings"
)

// Width fixes the length of a FixedBytes type. Implementations are empty structs.
type Width interface {
	Size() int
}

type W20 struct{}

func (W20) Size() int { return 20 }

type W32 struct{}

func (W32) Size() int { return 32 }

type Address = FixedBytes[W20] //20 bytes, address-like identifiers
type Hash = FixedBytes[W32]    //32 bytes

// FixedBytes is an immutable array of exactly W.Size() bytes.
//
// The bytes are held in a string so values compare with == and order with Compare.
// The all-zero value is stored as the empty string, which makes the Go zero value
// and Zero() the same value.
type FixedBytes[W Width] struct {
	raw string
}

func size[W Width]() int {
	var width W
	return width.Size()
}

func fromBytes[W Width](b []byte) FixedBytes[W] {
	for _, c := range b {
		if c != 0 {
			return FixedBytes[W]{raw: string(b)}
		}
	}
	return FixedBytes[W]{}
}

func FromSlice[W Width](b []byte) (FixedBytes[W], error) {
	if n := size[W](); len(b) != n {
		return FixedBytes[W]{}, lengthMismatch(len(b), n)
	}
	return fromBytes[W](b), nil
}

func MustFromSlice[W Width](b []byte) FixedBytes[W] {
	value, err := FromSlice[W](b)
	if err != nil {
		panic(err)
	}
	return value
}

func Zero[W Width]() FixedBytes[W] {
	return FixedBytes[W]{}
}

// Repeat returns the value with every byte set to b.
func Repeat[W Width](b byte) FixedBytes[W] {
	return fromBytes[W](bytes.Repeat([]byte{b}, size[W]()))
}

func (value FixedBytes[W]) Len() int {
	return size[W]()
}

func (value FixedBytes[W]) IsZero() bool {
	return value.raw == ""
}

// Bytes returns a copy of the underlying bytes.
func (value FixedBytes[W]) Bytes() []byte {
	out := make([]byte, size[W]())
	copy(out, value.raw)
	return out
}

func (value FixedBytes[W]) At(i int) byte {
	if n := size[W](); i < 0 || i >= n {
		panic(fmt.Sprintf("fixedbytes: index %d out of range [0:%d]", i, n))
	}
	if value.raw == "" {
		return 0
	}
	return value.raw[i]
}

// Slice returns a copy of bytes [from, to).
func (value FixedBytes[W]) Slice(from int, to int) []byte {
	return value.Bytes()[from:to:to]
}

func Compare[W Width](a FixedBytes[W], b FixedBytes[W]) int {
	return strings.Compare(a.raw, b.raw)
}

func (value FixedBytes[W]) Compare(other FixedBytes[W]) int {
	return Compare(value, other)
}

func (value FixedBytes[W]) Equal(other FixedBytes[W]) bool {
	return value.raw == other.raw
}

func (value FixedBytes[W]) Less(other FixedBytes[W]) bool {
	return value.raw < other.raw
}

func (value FixedBytes[W]) Hex() string {
	return HexCodec[W]{}.Encode(value)
}

func (value FixedBytes[W]) String() string {
	return value.Hex()
}

func (value FixedBytes[W]) MarshalText() ([]byte, error) {
	return []byte(value.Hex()), nil
}

func (value *FixedBytes[W]) UnmarshalText(text []byte) error {
	parsed, err := FromHex[W](string(text))
	if err != nil {
		return err
	}

	*value = parsed
	return nil
}
