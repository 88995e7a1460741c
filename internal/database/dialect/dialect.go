package db_dialect

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

var ErrUnsupportedBackend = errors.New("unsupported backend")

type Backend uint8

const (
	SQLite Backend = iota + 1
	MySQL
	Postgres
)

var backendNames = map[Backend]string{
	SQLite:   "sqlite",
	MySQL:    "mysql",
	Postgres: "postgres",
}

// ParseBackend accepts driver names as well as gorm dialector names.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "mysql", "mariadb":
		return MySQL, nil
	case "postgres", "postgresql", "pgx", "pq":
		return Postgres, nil
	}

	return 0, errors.Wrapf(ErrUnsupportedBackend, "backend %q", name)
}

func (backend Backend) String() string {
	if name, ok := backendNames[backend]; ok {
		return name
	}
	return fmt.Sprintf("backend(%d)", uint8(backend))
}

func (backend Backend) Valid() bool {
	_, ok := backendNames[backend]
	return ok
}

type Encoding uint8

const (
	TextHex Encoding = iota + 1
	NativeBinary
)

func (encoding Encoding) String() string {
	switch encoding {
	case TextHex:
		return "text-hex"
	case NativeBinary:
		return "native-binary"
	}
	return fmt.Sprintf("encoding(%d)", uint8(encoding))
}

// Column describes the identifier column a value is bound to or read from.
// An empty Type means the column declaration was not supplied.
type Column struct {
	Backend Backend
	Type    string
}

func (column Column) String() string {
	if column.Type == "" {
		return column.Backend.String()
	}
	return fmt.Sprintf("%s %s", column.Backend, column.Type)
}

// Encoding resolves the column through the backend policy table.
func (column Column) Encoding() (Encoding, error) {
	if column.Type == "" {
		return DefaultEncoding(column.Backend)
	}

	columnType, err := ParseColumnType(column.Type)
	if err != nil {
		return 0, err
	}

	return EncodingFor(column.Backend, columnType)
}

// Placeholder returns the bind placeholder for the n-th parameter, counting from 1.
func (backend Backend) Placeholder(n int) string {
	if backend == Postgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}
