package config

import (
	"fmt"

	"gopkg.in/yaml.v2"

	db_dialect "github.com/nivschuman/FixedBytesSQL/internal/database/dialect"
	"github.com/nivschuman/FixedBytesSQL/internal/fixedbytes"
)

type CodecConfig struct {
	PostgresColumnType string `yaml:"postgres-column-type"`
	TableName          string `yaml:"table-name"`
}

func DefaultCodecConfig() CodecConfig {
	return CodecConfig{
		PostgresColumnType: "BYTEA",
		TableName:          "user_wallets",
	}
}

func (c *CodecConfig) UnmarshalYAML(unmarshal func(any) error) error {
	raw := DefaultCodecConfig()
	var fields struct {
		PostgresColumnType *string `yaml:"postgres-column-type"`
		TableName          *string `yaml:"table-name"`
	}

	if err := unmarshal(&fields); err != nil {
		return err
	}

	if fields.PostgresColumnType != nil {
		if err := validatePostgresColumnType(*fields.PostgresColumnType); err != nil {
			return &yaml.TypeError{Errors: []string{fmt.Sprintf("invalid postgres-column-type: %v", err)}}
		}
		raw.PostgresColumnType = *fields.PostgresColumnType
	}

	if fields.TableName != nil {
		raw.TableName = *fields.TableName
	}

	*c = raw
	return nil
}

// CHAR and CHARACTER without a length hold a single character in postgres.
var postgresColumnTypes = map[string]bool{
	"BYTEA":             false,
	"TEXT":              false,
	"VARCHAR":           false,
	"CHARACTER VARYING": false,
	"BPCHAR":            false,
	"CHAR":              true,
	"CHARACTER":         true,
}

func validatePostgresColumnType(declared string) error {
	columnType, err := db_dialect.ParseColumnType(declared)
	if err != nil {
		return err
	}

	needsLength, ok := postgresColumnTypes[columnType.Name]
	if !ok {
		return fmt.Errorf("%s is not a postgres type for identifiers", columnType.Name)
	}

	if needsLength && columnType.Length == 0 {
		return fmt.Errorf("%s needs a declared length", columnType.Name)
	}

	encoding, err := db_dialect.EncodingFor(db_dialect.Postgres, columnType)
	if err != nil {
		return err
	}

	if width := fixedbytes.Zero[fixedbytes.W20]().Len(); !columnType.Fits(encoding, width) {
		return fmt.Errorf("%s cannot hold a %d byte identifier as %s", declared, width, encoding)
	}

	return nil
}
