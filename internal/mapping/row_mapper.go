package mapping

import (
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	db_codec "github.com/nivschuman/FixedBytesSQL/internal/database/codec"
	db_dialect "github.com/nivschuman/FixedBytesSQL/internal/database/dialect"
	"github.com/nivschuman/FixedBytesSQL/internal/fixedbytes"
	models "github.com/nivschuman/FixedBytesSQL/internal/models"
)

// WalletColumns names the result columns read into a wallet. Empty names are not read.
type WalletColumns struct {
	Id         string
	UserId     string
	Address    string
	Name       string
	IsPrimary  string
	BalanceWei string
}

var DefaultWalletColumns = WalletColumns{
	Id:         "id",
	UserId:     "user_id",
	Address:    "address",
	Name:       "name",
	IsPrimary:  "is_primary",
	BalanceWei: "balance_wei",
}

// RowMapper maps database/sql result rows into wallets. The identifier column goes
// through the column decoder, every other column through database/sql conversion.
// Columns missing from the result keep their zero value; extra columns are ignored.
type RowMapper struct {
	backend db_dialect.Backend
	columns WalletColumns
	schema  map[string]string
}

// NewRowMapper takes the declared type of identifier columns from schema, keyed by
// column name. Columns not in schema use the type reported by the driver.
func NewRowMapper(backend db_dialect.Backend, columns WalletColumns, schema map[string]string) *RowMapper {
	return &RowMapper{backend: backend, columns: columns, schema: schema}
}

type walletRow struct {
	id         sql.NullInt64
	userId     sql.NullInt32
	name       sql.NullString
	isPrimary  sql.NullBool
	balanceWei decimal.NullDecimal
	address    fixedbytes.Address
	hasAddress bool
}

func (mapper *RowMapper) MapWallets(rows *sql.Rows) ([]*models.Wallet, error) {
	plan, err := mapper.plan(rows)
	if err != nil {
		return nil, err
	}

	wallets := make([]*models.Wallet, 0)
	for rows.Next() {
		wallet, err := mapper.scan(rows, plan)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, wallet)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return wallets, nil
}

// MapWallet maps the first row, returning sql.ErrNoRows when there is none.
func (mapper *RowMapper) MapWallet(rows *sql.Rows) (*models.Wallet, error) {
	plan, err := mapper.plan(rows)
	if err != nil {
		return nil, err
	}

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, sql.ErrNoRows
	}

	return mapper.scan(rows, plan)
}

type columnPlan struct {
	name   string
	column db_dialect.Column
}

func (mapper *RowMapper) plan(rows *sql.Rows) ([]columnPlan, error) {
	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	plan := make([]columnPlan, len(columnTypes))
	for i, columnType := range columnTypes {
		declared, ok := mapper.schema[columnType.Name()]
		if !ok {
			declared = columnType.DatabaseTypeName()
		}

		plan[i] = columnPlan{
			name:   columnType.Name(),
			column: db_dialect.Column{Backend: mapper.backend, Type: declared},
		}
	}

	return plan, nil
}

func (mapper *RowMapper) scan(rows *sql.Rows, plan []columnPlan) (*models.Wallet, error) {
	row := &walletRow{}
	dest := make([]any, len(plan))

	for i, p := range plan {
		switch p.name {
		case mapper.columns.Address:
			dest[i] = db_codec.Into(p.column, &row.address)
			row.hasAddress = true
		case mapper.columns.Id:
			dest[i] = &row.id
		case mapper.columns.UserId:
			dest[i] = &row.userId
		case mapper.columns.Name:
			dest[i] = &row.name
		case mapper.columns.IsPrimary:
			dest[i] = &row.isPrimary
		case mapper.columns.BalanceWei:
			dest[i] = &row.balanceWei
		default:
			dest[i] = new(any)
		}
	}

	if err := rows.Scan(dest...); err != nil {
		return nil, errors.Wrap(err, "map wallet row")
	}

	if !row.hasAddress {
		return nil, errors.Newf("map wallet row: result has no %q column", mapper.columns.Address)
	}

	return row.toWallet(), nil
}

func (row *walletRow) toWallet() *models.Wallet {
	wallet := &models.Wallet{
		UserId:     row.userId.Int32,
		Address:    row.address,
		Name:       row.name.String,
		IsPrimary:  row.isPrimary.Bool,
		BalanceWei: row.balanceWei.Decimal,
	}

	if row.id.Valid {
		id := row.id.Int64
		wallet.Id = &id
	}

	return wallet
}
