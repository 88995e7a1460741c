package repositories

import "gorm.io/gorm"

var GlobalWalletRepository WalletRepository = nil

func InitializeGlobalRepositories(db *gorm.DB, tableName string) error {
	if GlobalWalletRepository != nil {
		return nil
	}

	repository := NewWalletRepositoryImpl(db, tableName)
	if err := repository.Setup(); err != nil {
		return err
	}

	GlobalWalletRepository = repository
	return nil
}
