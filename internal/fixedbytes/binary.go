package fixedbytes

// BinaryCodec passes the N bytes through unchanged, for native binary columns.
type BinaryCodec[W Width] struct{}

func (BinaryCodec[W]) Encode(value FixedBytes[W]) []byte {
	return value.Bytes()
}

func (BinaryCodec[W]) Decode(buf []byte) (FixedBytes[W], error) {
	return FromSlice[W](buf)
}
