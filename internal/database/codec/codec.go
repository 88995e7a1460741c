// Package db_codec binds identifier values to, and decodes them from, the column
// encoding each backend uses: hex text or native binary.
//
// The encoding is picked from a static policy keyed on the backend and the declared
// type of the column, never from the runtime type of the value. Binders and decoders
// hold no state and are safe for concurrent use.
package db_codec

import (
	"github.com/cockroachdb/errors"

	db_dialect "github.com/nivschuman/FixedBytesSQL/internal/database/dialect"
	"github.com/nivschuman/FixedBytesSQL/internal/fixedbytes"
)

var (
	ErrUnsupportedColumnType = db_dialect.ErrUnsupportedColumnType
	ErrUnsupportedBackend    = db_dialect.ErrUnsupportedBackend
	ErrLengthMismatch        = fixedbytes.ErrLengthMismatch
	ErrInvalidHexLength      = fixedbytes.ErrInvalidHexLength
	ErrInvalidHexDigit       = fixedbytes.ErrInvalidHexDigit
	ErrNullValue             = fixedbytes.ErrNullValue
	ErrUnsupportedSource     = fixedbytes.ErrUnsupportedSource
)

// resolve picks the encoding for a column holding n-byte identifiers.
// SQLite ignores declared lengths, so only MySQL and Postgres are checked for width.
func resolve(column db_dialect.Column, n int) (db_dialect.Encoding, error) {
	encoding, err := column.Encoding()
	if err != nil {
		return 0, err
	}

	if column.Type == "" || column.Backend == db_dialect.SQLite {
		return encoding, nil
	}

	columnType, err := db_dialect.ParseColumnType(column.Type)
	if err != nil {
		return 0, err
	}

	if !columnType.Fits(encoding, n) {
		return 0, errors.Wrapf(ErrUnsupportedColumnType, "%s cannot hold a %d byte identifier as %s", column, n, encoding)
	}

	return encoding, nil
}

func width[W fixedbytes.Width]() int {
	return fixedbytes.Zero[W]().Len()
}
