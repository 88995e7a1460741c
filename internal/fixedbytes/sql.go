package fixedbytes

import (
	"database/sql/driver"

	"github.com/cockroachdb/errors"

	db_dialect "github.com/nivschuman/FixedBytesSQL/internal/database/dialect"
)

// Value binds the canonical hex text. Use a column binder when the column is binary.
func (value FixedBytes[W]) Value() (driver.Value, error) {
	return value.Hex(), nil
}

// Scan accepts hex text as string or []byte, and raw bytes of exactly N.
// Hex text is 2N or 2N+2 long, so a []byte of N bytes is always raw.
func (value *FixedBytes[W]) Scan(src any) error {
	var parsed FixedBytes[W]
	var err error

	switch v := src.(type) {
	case nil:
		return errors.Wrap(ErrNullValue, "scan")
	case string:
		parsed, err = FromHex[W](v)
	case []byte:
		switch n := size[W](); len(v) {
		case n:
			parsed, err = FromSlice[W](v)
		case 2 * n, 2*n + 2:
			parsed, err = FromHex[W](string(v))
		default:
			err = lengthMismatch(len(v), n)
		}
	default:
		return errors.Wrapf(ErrUnsupportedSource, "cannot scan %T", src)
	}

	if err != nil {
		return err
	}

	*value = parsed
	return nil
}

func (value FixedBytes[W]) EncodeAs(encoding db_dialect.Encoding) (driver.Value, error) {
	switch encoding {
	case db_dialect.TextHex:
		return HexCodec[W]{}.Encode(value), nil
	case db_dialect.NativeBinary:
		return BinaryCodec[W]{}.Encode(value), nil
	}

	return nil, errors.Newf("fixedbytes: unknown encoding %s", encoding)
}

// DecodeAs decodes a fully materialized driver value stored with the given encoding.
func DecodeAs[W Width](encoding db_dialect.Encoding, raw any) (FixedBytes[W], error) {
	if raw == nil {
		return FixedBytes[W]{}, errors.Wrapf(ErrNullValue, "%s column", encoding)
	}

	switch encoding {
	case db_dialect.TextHex:
		switch v := raw.(type) {
		case string:
			return HexCodec[W]{}.Decode(v)
		case []byte:
			return HexCodec[W]{}.DecodeBytes(v)
		}
	case db_dialect.NativeBinary:
		if v, ok := raw.([]byte); ok {
			return BinaryCodec[W]{}.Decode(v)
		}
	default:
		return FixedBytes[W]{}, errors.Newf("fixedbytes: unknown encoding %s", encoding)
	}

	return FixedBytes[W]{}, errors.Wrapf(ErrUnsupportedSource, "%T for %s column", raw, encoding)
}
