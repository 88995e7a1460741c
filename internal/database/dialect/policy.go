package db_dialect

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

type policyKey struct {
	backend Backend
	kind    ColumnKind
}

// SQLite declared types only set an affinity, so identifiers are always stored as text there.
var policy = map[policyKey]Encoding{
	{SQLite, TextColumn}:     TextHex,
	{SQLite, BinaryColumn}:   TextHex,
	{MySQL, TextColumn}:      TextHex,
	{MySQL, BinaryColumn}:    NativeBinary,
	{Postgres, TextColumn}:   TextHex,
	{Postgres, BinaryColumn}: NativeBinary,
}

func EncodingFor(backend Backend, columnType ColumnType) (Encoding, error) {
	encoding, ok := policy[policyKey{backend, columnType.Kind}]
	if !ok {
		if !backend.Valid() {
			return 0, errors.Wrapf(ErrUnsupportedBackend, "%s", backend)
		}
		return 0, errors.Wrapf(ErrUnsupportedColumnType, "%s on %s", columnType.Name, backend)
	}

	return encoding, nil
}

// DefaultEncoding is used when the caller did not declare the column type.
// Postgres supports both encodings for the same identifier, so it has none.
func DefaultEncoding(backend Backend) (Encoding, error) {
	switch backend {
	case SQLite:
		return TextHex, nil
	case MySQL:
		return NativeBinary, nil
	case Postgres:
		return 0, errors.Wrap(ErrUnsupportedColumnType, "postgres identifier column needs a declared type")
	}

	return 0, errors.Wrapf(ErrUnsupportedBackend, "%s", backend)
}

// DefaultColumnType is the declaration used when creating identifier columns of n bytes.
func DefaultColumnType(backend Backend, n int) string {
	switch backend {
	case MySQL:
		return fmt.Sprintf("BINARY(%d)", n)
	case Postgres:
		return "BYTEA"
	}
	return "TEXT"
}
