package db_types

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Decimal is an arbitrary precision integer column, used for wei balances.
type Decimal struct {
	decimal.Decimal
}

func NewDecimal(value decimal.Decimal) Decimal {
	return Decimal{Decimal: value}
}

// GormDBDataType declares the column as TEXT on sqlite, where DECIMAL has numeric
// affinity and values past int64 are stored as REAL.
func (Decimal) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "sqlite":
		return "TEXT"
	case "postgres":
		return "NUMERIC(78,0)"
	}
	return "DECIMAL(65,0)"
}
