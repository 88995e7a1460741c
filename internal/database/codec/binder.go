package db_codec

import (
	"database/sql/driver"

	db_dialect "github.com/nivschuman/FixedBytesSQL/internal/database/dialect"
	"github.com/nivschuman/FixedBytesSQL/internal/fixedbytes"
)

type Binder[W fixedbytes.Width] struct{}

func (Binder[W]) Bind(column db_dialect.Column, value fixedbytes.FixedBytes[W]) (driver.Value, error) {
	encoding, err := resolve(column, width[W]())
	if err != nil {
		return nil, err
	}
	return value.EncodeAs(encoding)
}

// Parameter is a query argument bound for a specific column.
type Parameter[W fixedbytes.Width] struct {
	column db_dialect.Column
	value  fixedbytes.FixedBytes[W]
}

func Param[W fixedbytes.Width](column db_dialect.Column, value fixedbytes.FixedBytes[W]) Parameter[W] {
	return Parameter[W]{column: column, value: value}
}

func (parameter Parameter[W]) Value() (driver.Value, error) {
	return Binder[W]{}.Bind(parameter.column, parameter.value)
}
