package mapping_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	db_codec "github.com/nivschuman/FixedBytesSQL/internal/database/codec"
	db "github.com/nivschuman/FixedBytesSQL/internal/database/connection"
	db_dialect "github.com/nivschuman/FixedBytesSQL/internal/database/dialect"
	db_models "github.com/nivschuman/FixedBytesSQL/internal/database/models"
	"github.com/nivschuman/FixedBytesSQL/internal/fixedbytes"
	mapping "github.com/nivschuman/FixedBytesSQL/internal/mapping"
	models "github.com/nivschuman/FixedBytesSQL/internal/models"
)

var testAddress = fixedbytes.MustFromHex[fixedbytes.W20]("0x742d35Cc6635C0532925a3b8D42cC72b5c2A9A1d")

func TestWalletToWalletDB(t *testing.T) {
	id := int64(7)
	wallet := &models.Wallet{
		Id:         &id,
		UserId:     1,
		Address:    testAddress,
		Name:       "Primary Hash",
		IsPrimary:  true,
		BalanceWei: decimal.RequireFromString("1000000000000000000"),
	}

	walletDB := mapping.WalletToWalletDB(wallet)
	assert.Equal(t, int64(7), walletDB.Id)
	assert.Equal(t, testAddress, walletDB.Address)

	back := mapping.WalletDBToWallet(walletDB)
	require.NotNil(t, back.Id)
	assert.Equal(t, id, *back.Id)
	assert.True(t, wallet.Equal(back))
}

func TestWalletToWalletDB_WithoutId(t *testing.T) {
	walletDB := mapping.WalletToWalletDB(&models.Wallet{Address: testAddress})
	assert.Equal(t, int64(0), walletDB.Id)
}

func TestWalletDBsToWallets(t *testing.T) {
	wallets := mapping.WalletDBsToWallets([]*db_models.WalletDB{
		{Id: 1, Address: testAddress},
		{Id: 2, Address: fixedbytes.Zero[fixedbytes.W20]()},
	})

	require.Len(t, wallets, 2)
	assert.Equal(t, int64(2), *wallets[1].Id)
	assert.True(t, wallets[1].IsEmpty())
}

func openSqlite(t *testing.T) *sql.DB {
	t.Helper()

	gormDB, _, err := db.Open("sqlite::memory:", "silent")
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)

	t.Cleanup(func() { sqlDB.Close() })
	return sqlDB
}

func setupEthereumFixed(t *testing.T, sqlDB *sql.DB, column db_dialect.Column) {
	t.Helper()
	ctx := context.Background()

	_, err := sqlDB.ExecContext(ctx, `CREATE TABLE ethereum_fixed (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hash BINARY(20) NOT NULL,
		name TEXT
	)`)
	require.NoError(t, err)

	_, err = sqlDB.ExecContext(ctx, "INSERT INTO ethereum_fixed (hash, name) VALUES (?, ?)",
		db_codec.Param(column, testAddress), "Test User")
	require.NoError(t, err)

	_, err = sqlDB.ExecContext(ctx, "INSERT INTO ethereum_fixed (hash, name) VALUES (?, ?)",
		db_codec.Param(column, fixedbytes.Zero[fixedbytes.W20]()), nil)
	require.NoError(t, err)
}

var ethereumFixedColumns = mapping.WalletColumns{Id: "id", Address: "hash", Name: "name"}

func TestRowMapper_MapWallet(t *testing.T) {
	sqlDB := openSqlite(t)
	column := db_dialect.Column{Backend: db_dialect.SQLite, Type: "BINARY(20)"}
	setupEthereumFixed(t, sqlDB, column)

	rows, err := sqlDB.Query("SELECT id, hash, name FROM ethereum_fixed WHERE hash = ?", db_codec.Param(column, testAddress))
	require.NoError(t, err)
	defer rows.Close()

	mapper := mapping.NewRowMapper(db_dialect.SQLite, ethereumFixedColumns, nil)
	wallet, err := mapper.MapWallet(rows)
	require.NoError(t, err)

	require.NotNil(t, wallet.Id)
	assert.Equal(t, testAddress, wallet.Address)
	assert.Equal(t, "Test User", wallet.Name)
	assert.Equal(t, int32(0), wallet.UserId)
}

func TestRowMapper_MapWallets_OrderedByIdentifier(t *testing.T) {
	sqlDB := openSqlite(t)
	column := db_dialect.Column{Backend: db_dialect.SQLite, Type: "TEXT"}
	setupEthereumFixed(t, sqlDB, column)

	rows, err := sqlDB.Query("SELECT id, hash, name, 1 AS extra FROM ethereum_fixed ORDER BY hash")
	require.NoError(t, err)
	defer rows.Close()

	mapper := mapping.NewRowMapper(db_dialect.SQLite, ethereumFixedColumns, map[string]string{"hash": "TEXT"})
	wallets, err := mapper.MapWallets(rows)
	require.NoError(t, err)

	require.Len(t, wallets, 2)
	assert.True(t, wallets[0].IsEmpty())
	assert.Equal(t, "", wallets[0].Name)
	assert.Equal(t, testAddress, wallets[1].Address)
}

func TestRowMapper_MapWallet_WhenNoRows(t *testing.T) {
	sqlDB := openSqlite(t)
	column := db_dialect.Column{Backend: db_dialect.SQLite, Type: "TEXT"}
	setupEthereumFixed(t, sqlDB, column)

	rows, err := sqlDB.Query("SELECT id, hash, name FROM ethereum_fixed WHERE hash = ?",
		db_codec.Param(column, fixedbytes.Repeat[fixedbytes.W20](0xff)))
	require.NoError(t, err)
	defer rows.Close()

	_, err = mapping.NewRowMapper(db_dialect.SQLite, ethereumFixedColumns, nil).MapWallet(rows)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestRowMapper_WhenIdentifierColumnMissing(t *testing.T) {
	sqlDB := openSqlite(t)
	setupEthereumFixed(t, sqlDB, db_dialect.Column{Backend: db_dialect.SQLite})

	rows, err := sqlDB.Query("SELECT id, name FROM ethereum_fixed")
	require.NoError(t, err)
	defer rows.Close()

	_, err = mapping.NewRowMapper(db_dialect.SQLite, ethereumFixedColumns, nil).MapWallets(rows)
	require.Error(t, err)
}

func TestRowMapper_WhenStoredValueIsCorrupt(t *testing.T) {
	sqlDB := openSqlite(t)
	setupEthereumFixed(t, sqlDB, db_dialect.Column{Backend: db_dialect.SQLite})

	_, err := sqlDB.Exec("INSERT INTO ethereum_fixed (hash, name) VALUES (?, ?)", "0x1234", "Short")
	require.NoError(t, err)

	rows, err := sqlDB.Query("SELECT id, hash, name FROM ethereum_fixed")
	require.NoError(t, err)
	defer rows.Close()

	_, err = mapping.NewRowMapper(db_dialect.SQLite, ethereumFixedColumns, map[string]string{"hash": "TEXT"}).MapWallets(rows)
	require.ErrorIs(t, err, db_codec.ErrInvalidHexLength)
}
