package main

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	config "github.com/nivschuman/FixedBytesSQL/internal/config"
	db "github.com/nivschuman/FixedBytesSQL/internal/database/connection"
	db_dialect "github.com/nivschuman/FixedBytesSQL/internal/database/dialect"
	repositories "github.com/nivschuman/FixedBytesSQL/internal/database/repositories"
	"github.com/nivschuman/FixedBytesSQL/internal/fixedbytes"
	models "github.com/nivschuman/FixedBytesSQL/internal/models"
)

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip",
	Short: "Insert, read back and range query identifiers against a live database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		column, err := columnFromFlags(cmd)
		if err != nil {
			return err
		}

		if column.Type == "" && column.Backend == db_dialect.Postgres {
			column.Type = cfg.CodecConfig.PostgresColumnType
		}

		return runRoundtrip(cmd, cfg, column)
	},
}

func databaseUrl(cfg *config.Config, backend db_dialect.Backend) string {
	switch backend {
	case db_dialect.MySQL:
		return cfg.DatabaseConfig.MysqlUrl
	case db_dialect.Postgres:
		return cfg.DatabaseConfig.PostgresUrl
	}
	return cfg.DatabaseConfig.SqliteUrl
}

func roundtripWallets() []*models.Wallet {
	return []*models.Wallet{
		{UserId: 1, Address: fixedbytes.Repeat[fixedbytes.W20](0xff), Name: "Max address", IsPrimary: true},
		{UserId: 1, Address: fixedbytes.Repeat[fixedbytes.W20](0x11), Name: "Address 1"},
		{UserId: 2, Address: fixedbytes.Zero[fixedbytes.W20](), Name: "Zero address", IsPrimary: true},
		{UserId: 3, Address: fixedbytes.Repeat[fixedbytes.W20](0x22), Name: "Address 2", IsPrimary: true},
	}
}

func runRoundtrip(cmd *cobra.Command, cfg *config.Config, column db_dialect.Column) error {
	gormDB, backend, err := db.Open(databaseUrl(cfg, column.Backend), cfg.DatabaseConfig.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.CloseDatabaseConnection(gormDB); err != nil {
			glog.Errorf("|Roundtrip| Failed to close database: %v", err)
		}
	}()

	tableName := db.UniqueTableName(cfg.CodecConfig.TableName)
	repository := repositories.NewWalletRepositoryImpl(gormDB, tableName)
	if err := repository.Setup(); err != nil {
		return fmt.Errorf("failed to create table %s: %w", tableName, err)
	}
	defer func() {
		if err := db.DropTable(gormDB, tableName); err != nil {
			glog.Errorf("|Roundtrip| Failed to drop table %s: %v", tableName, err)
		}
	}()

	wallets := roundtripWallets()
	if err := repository.InsertBatch(wallets); err != nil {
		return fmt.Errorf("failed to insert wallets: %w", err)
	}

	stored, err := repository.GetAll()
	if err != nil {
		return err
	}

	if err := checkOrdered(stored, len(wallets)); err != nil {
		return err
	}

	inRange, err := repository.GetAddressRange(wallets[1].Address, wallets[3].Address)
	if err != nil {
		return err
	}

	if len(inRange) != 2 {
		return fmt.Errorf("range query returned %d wallets, want 2", len(inRange))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s gorm: %d wallets round tripped, range returned %d\n", backend, len(stored), len(inRange))

	if column.Type == "" {
		column.Type = db_dialect.DefaultColumnType(column.Backend, fixedbytes.Zero[fixedbytes.W20]().Len())
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	sqlTable := tableName + "_sql"
	store := repositories.NewWalletSqlStore(sqlDB, backend, sqlTable, column.Type)
	if err := store.CreateTable(cmd.Context()); err != nil {
		return fmt.Errorf("failed to create table %s: %w", sqlTable, err)
	}
	defer func() {
		if err := db.DropTable(gormDB, sqlTable); err != nil {
			glog.Errorf("|Roundtrip| Failed to drop table %s: %v", sqlTable, err)
		}
	}()

	for _, wallet := range roundtripWallets() {
		if err := store.Insert(cmd.Context(), wallet); err != nil {
			return fmt.Errorf("failed to insert wallet: %w", err)
		}
	}

	stored, err = store.GetAll(cmd.Context())
	if err != nil {
		return err
	}

	if err := checkOrdered(stored, len(wallets)); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s: %d wallets round tripped\n", backend, column.Type, len(stored))
	return nil
}

func checkOrdered(wallets []*models.Wallet, want int) error {
	if len(wallets) != want {
		return fmt.Errorf("read %d wallets, want %d", len(wallets), want)
	}

	for i := 1; i < len(wallets); i++ {
		if !wallets[i-1].Address.Less(wallets[i].Address) {
			return fmt.Errorf("wallets out of order: %s before %s", wallets[i-1].Address, wallets[i].Address)
		}
	}

	return nil
}
