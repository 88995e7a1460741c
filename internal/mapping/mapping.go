package mapping

import (
	db_models "github.com/nivschuman/FixedBytesSQL/internal/database/models"
	db_types "github.com/nivschuman/FixedBytesSQL/internal/database/types"
	models "github.com/nivschuman/FixedBytesSQL/internal/models"
)

func WalletToWalletDB(wallet *models.Wallet) *db_models.WalletDB {
	walletDB := &db_models.WalletDB{
		UserId:     wallet.UserId,
		Address:    wallet.Address,
		Name:       wallet.Name,
		IsPrimary:  wallet.IsPrimary,
		BalanceWei: db_types.NewDecimal(wallet.BalanceWei),
	}

	if wallet.Id != nil {
		walletDB.Id = *wallet.Id
	}

	return walletDB
}

func WalletDBToWallet(walletDB *db_models.WalletDB) *models.Wallet {
	id := walletDB.Id

	return &models.Wallet{
		Id:         &id,
		UserId:     walletDB.UserId,
		Address:    walletDB.Address,
		Name:       walletDB.Name,
		IsPrimary:  walletDB.IsPrimary,
		BalanceWei: walletDB.BalanceWei.Decimal,
	}
}

func WalletDBsToWallets(walletsDB []*db_models.WalletDB) []*models.Wallet {
	wallets := make([]*models.Wallet, len(walletsDB))
	for i, walletDB := range walletsDB {
		wallets[i] = WalletDBToWallet(walletDB)
	}
	return wallets
}
