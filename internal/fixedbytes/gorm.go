package fixedbytes

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"

	db_dialect "github.com/nivschuman/FixedBytesSQL/internal/database/dialect"
)

func (FixedBytes[W]) GormDataType() string {
	return "fixedbytes"
}

// GormDBDataType declares identifier columns the way GormValue binds them.
func (FixedBytes[W]) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	backend, err := db_dialect.ParseBackend(db.Dialector.Name())
	if err != nil {
		return ""
	}
	return db_dialect.DefaultColumnType(backend, size[W]())
}

func (value FixedBytes[W]) GormValue(ctx context.Context, db *gorm.DB) clause.Expr {
	encoded, err := value.gormEncode(db)
	if err != nil {
		_ = db.AddError(err)
		return clause.Expr{SQL: "?", Vars: []any{value.Hex()}}
	}
	return clause.Expr{SQL: "?", Vars: []any{encoded}}
}

func (value FixedBytes[W]) gormEncode(db *gorm.DB) (any, error) {
	backend, err := db_dialect.ParseBackend(db.Dialector.Name())
	if err != nil {
		return nil, err
	}

	column := db_dialect.Column{Backend: backend, Type: db_dialect.DefaultColumnType(backend, size[W]())}
	encoding, err := column.Encoding()
	if err != nil {
		return nil, err
	}

	return value.EncodeAs(encoding)
}
