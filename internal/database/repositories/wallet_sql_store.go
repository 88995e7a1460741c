package repositories

import (
	"context"
	"database/sql"
	"fmt"

	db_codec "github.com/nivschuman/FixedBytesSQL/internal/database/codec"
	db_dialect "github.com/nivschuman/FixedBytesSQL/internal/database/dialect"
	"github.com/nivschuman/FixedBytesSQL/internal/fixedbytes"
	mapping "github.com/nivschuman/FixedBytesSQL/internal/mapping"
	models "github.com/nivschuman/FixedBytesSQL/internal/models"
)

// WalletSqlStore reads and writes wallets with plain database/sql, binding the
// address through the column binder for an explicitly declared column type.
type WalletSqlStore struct {
	db        *sql.DB
	tableName string
	column    db_dialect.Column
	mapper    *mapping.RowMapper
}

func NewWalletSqlStore(db *sql.DB, backend db_dialect.Backend, tableName string, addressType string) *WalletSqlStore {
	column := db_dialect.Column{Backend: backend, Type: addressType}
	mapper := mapping.NewRowMapper(backend, mapping.DefaultWalletColumns, map[string]string{
		mapping.DefaultWalletColumns.Address: addressType,
	})

	return &WalletSqlStore{db: db, tableName: tableName, column: column, mapper: mapper}
}

var idColumns = map[db_dialect.Backend]string{
	db_dialect.SQLite:   "id INTEGER PRIMARY KEY AUTOINCREMENT",
	db_dialect.MySQL:    "id BIGINT AUTO_INCREMENT PRIMARY KEY",
	db_dialect.Postgres: "id BIGSERIAL PRIMARY KEY",
}

// sqlite gives DECIMAL numeric affinity, which rounds balances past int64.
var balanceColumns = map[db_dialect.Backend]string{
	db_dialect.SQLite:   "balance_wei TEXT NOT NULL DEFAULT '0'",
	db_dialect.MySQL:    "balance_wei DECIMAL(65, 0) NOT NULL DEFAULT 0",
	db_dialect.Postgres: "balance_wei NUMERIC(78, 0) NOT NULL DEFAULT 0",
}

// CreateTable drops and recreates the table with the declared address type.
func (store *WalletSqlStore) CreateTable(ctx context.Context) error {
	if _, err := store.column.Encoding(); err != nil {
		return err
	}

	if _, err := store.db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", store.tableName)); err != nil {
		return err
	}

	ddl := fmt.Sprintf(`CREATE TABLE %s (
		%s,
		user_id INTEGER NOT NULL DEFAULT 0,
		address %s NOT NULL,
		name VARCHAR(255),
		is_primary BOOLEAN NOT NULL DEFAULT FALSE,
		%s
	)`, store.tableName, idColumns[store.column.Backend], store.column.Type, balanceColumns[store.column.Backend])

	_, err := store.db.ExecContext(ctx, ddl)
	return err
}

func (store *WalletSqlStore) placeholders(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = store.column.Backend.Placeholder(i + 1)
	}
	return out
}

func (store *WalletSqlStore) Insert(ctx context.Context, wallet *models.Wallet) error {
	query := fmt.Sprintf("INSERT INTO %s (user_id, address, name, is_primary, balance_wei) VALUES (%s, %s, %s, %s, %s)",
		append([]any{store.tableName}, store.placeholders(5)...)...)

	args := []any{
		wallet.UserId,
		db_codec.Param(store.column, wallet.Address),
		wallet.Name,
		wallet.IsPrimary,
		wallet.BalanceWei,
	}

	if store.column.Backend == db_dialect.Postgres {
		var id int64
		if err := store.db.QueryRowContext(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
			return err
		}
		wallet.Id = &id
		return nil
	}

	result, err := store.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	wallet.Id = &id
	return nil
}

const walletColumns = "id, user_id, address, name, is_primary, balance_wei"

func (store *WalletSqlStore) GetByAddress(ctx context.Context, address fixedbytes.Address) ([]*models.Wallet, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE address = %s ORDER BY id",
		walletColumns, store.tableName, store.column.Backend.Placeholder(1))

	return store.query(ctx, query, db_codec.Param(store.column, address))
}

func (store *WalletSqlStore) GetAddressRange(ctx context.Context, low fixedbytes.Address, high fixedbytes.Address) ([]*models.Wallet, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE address >= %s AND address <= %s ORDER BY address, id",
		walletColumns, store.tableName, store.column.Backend.Placeholder(1), store.column.Backend.Placeholder(2))

	return store.query(ctx, query, db_codec.Param(store.column, low), db_codec.Param(store.column, high))
}

func (store *WalletSqlStore) GetAll(ctx context.Context) ([]*models.Wallet, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY address, id", walletColumns, store.tableName)
	return store.query(ctx, query)
}

func (store *WalletSqlStore) query(ctx context.Context, query string, args ...any) ([]*models.Wallet, error) {
	rows, err := store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return store.mapper.MapWallets(rows)
}
