package db_codec

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgtype"

	db_dialect "github.com/nivschuman/FixedBytesSQL/internal/database/dialect"
	"github.com/nivschuman/FixedBytesSQL/internal/fixedbytes"
)

type Decoder[W fixedbytes.Width] struct{}

// Decode expects the complete column value as returned by the driver.
func (Decoder[W]) Decode(column db_dialect.Column, raw any) (fixedbytes.FixedBytes[W], error) {
	encoding, err := resolve(column, width[W]())
	if err != nil {
		return fixedbytes.FixedBytes[W]{}, err
	}

	if text, ok := raw.(string); ok && column.Backend == db_dialect.Postgres && encoding == db_dialect.NativeBinary {
		return decodeByteaText[W](text)
	}

	return fixedbytes.DecodeAs[W](encoding, raw)
}

// decodeByteaText handles bytea columns read in text format, e.g. "\x742d35cc...".
func decodeByteaText[W fixedbytes.Width](text string) (fixedbytes.FixedBytes[W], error) {
	if !strings.HasPrefix(text, `\x`) {
		return fixedbytes.FixedBytes[W]{}, errors.Wrap(ErrUnsupportedSource, "bytea text without \\x prefix")
	}

	if digits := len(text) - 2; digits%2 != 0 {
		return fixedbytes.FixedBytes[W]{}, errors.Wrapf(ErrInvalidHexLength, "bytea text has %d hex digits", digits)
	}

	var bytea pgtype.Bytea
	if err := bytea.DecodeText(nil, []byte(text)); err != nil {
		return fixedbytes.FixedBytes[W]{}, errors.Wrapf(ErrInvalidHexDigit, "decode bytea: %v", err)
	}

	return fixedbytes.BinaryCodec[W]{}.Decode(bytea.Bytes)
}

// Target scans a column value into dest through the column's decoder.
type Target[W fixedbytes.Width] struct {
	column db_dialect.Column
	dest   *fixedbytes.FixedBytes[W]
}

func Into[W fixedbytes.Width](column db_dialect.Column, dest *fixedbytes.FixedBytes[W]) Target[W] {
	return Target[W]{column: column, dest: dest}
}

func (target Target[W]) Scan(src any) error {
	value, err := Decoder[W]{}.Decode(target.column, src)
	if err != nil {
		return errors.Wrapf(err, "scan %s column", target.column)
	}

	*target.dest = value
	return nil
}
