package db_dialect

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var ErrUnsupportedColumnType = errors.New("unsupported column type")

type ColumnKind uint8

const (
	TextColumn ColumnKind = iota + 1
	BinaryColumn
)

var columnKinds = map[string]ColumnKind{
	"TEXT":              TextColumn,
	"VARCHAR":           TextColumn,
	"CHAR":              TextColumn,
	"CHARACTER":         TextColumn,
	"CHARACTER VARYING": TextColumn,
	"NVARCHAR":          TextColumn,
	"NCHAR":             TextColumn,
	"BPCHAR":            TextColumn,
	"BINARY":            BinaryColumn,
	"VARBINARY":         BinaryColumn,
	"BLOB":              BinaryColumn,
	"BYTEA":             BinaryColumn,
}

// ColumnType is a declared SQL type reduced to what the codec needs.
// Length is zero when the declaration has no length.
type ColumnType struct {
	Name   string
	Kind   ColumnKind
	Length int
}

// ParseColumnType parses declarations such as "VARCHAR(42)", "binary(20)" or "BYTEA".
func ParseColumnType(declared string) (ColumnType, error) {
	normalized := strings.ToUpper(strings.Join(strings.Fields(declared), " "))
	name := normalized
	length := 0

	if open := strings.IndexByte(normalized, '('); open >= 0 {
		end := strings.IndexByte(normalized, ')')
		if end < open || end != len(normalized)-1 {
			return ColumnType{}, errors.Wrapf(ErrUnsupportedColumnType, "malformed declaration %q", declared)
		}

		n, err := strconv.Atoi(strings.TrimSpace(normalized[open+1 : end]))
		if err != nil || n <= 0 {
			return ColumnType{}, errors.Wrapf(ErrUnsupportedColumnType, "invalid length in %q", declared)
		}

		name = strings.TrimSpace(normalized[:open])
		length = n
	}

	kind, ok := columnKinds[name]
	if !ok {
		return ColumnType{}, errors.Wrapf(ErrUnsupportedColumnType, "%q", declared)
	}

	return ColumnType{Name: name, Kind: kind, Length: length}, nil
}

// Fits reports whether a value of n bytes stored with the given encoding fits the declared length.
func (columnType ColumnType) Fits(encoding Encoding, n int) bool {
	if columnType.Length == 0 {
		return true
	}

	if encoding == TextHex {
		return columnType.Length >= 2+2*n
	}
	return columnType.Length >= n
}
