package repositories

import (
	db_models "github.com/nivschuman/FixedBytesSQL/internal/database/models"
	"github.com/nivschuman/FixedBytesSQL/internal/fixedbytes"
	mapping "github.com/nivschuman/FixedBytesSQL/internal/mapping"
	models "github.com/nivschuman/FixedBytesSQL/internal/models"
	"gorm.io/gorm"
)

type WalletRepository interface {
	Setup() error
	Insert(wallet *models.Wallet) error
	InsertBatch(wallets []*models.Wallet) error
	InsertTransactional(wallet *models.Wallet, tx *gorm.DB) error
	GetByAddress(address fixedbytes.Address) ([]*models.Wallet, error)
	GetAll() ([]*models.Wallet, error)
	GetAddressRange(low fixedbytes.Address, high fixedbytes.Address) ([]*models.Wallet, error)
	GetPrimaryExcluding(address fixedbytes.Address) ([]*models.Wallet, error)
	Count() (int64, error)
	CountPerUser() ([]*db_models.UserWalletCount, error)
}

type WalletRepositoryImpl struct {
	db        *gorm.DB
	tableName string
}

func NewWalletRepositoryImpl(db *gorm.DB, tableName string) *WalletRepositoryImpl {
	if tableName == "" {
		tableName = db_models.WalletDB{}.TableName()
	}
	return &WalletRepositoryImpl{db: db, tableName: tableName}
}

func (repo *WalletRepositoryImpl) table(db *gorm.DB) *gorm.DB {
	return db.Table(repo.tableName)
}

func (repo *WalletRepositoryImpl) Setup() error {
	return repo.table(repo.db).AutoMigrate(&db_models.WalletDB{})
}

func (repo *WalletRepositoryImpl) Insert(wallet *models.Wallet) error {
	return repo.InsertTransactional(wallet, repo.db)
}

// InsertBatch inserts all wallets in one transaction, none of them when any insert fails.
func (repo *WalletRepositoryImpl) InsertBatch(wallets []*models.Wallet) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		for _, wallet := range wallets {
			if err := repo.InsertTransactional(wallet, tx); err != nil {
				return err
			}
		}
		return nil
	})
}

func (repo *WalletRepositoryImpl) InsertTransactional(wallet *models.Wallet, tx *gorm.DB) error {
	walletDB := mapping.WalletToWalletDB(wallet)

	if err := repo.table(tx).Create(walletDB).Error; err != nil {
		return err
	}

	id := walletDB.Id
	wallet.Id = &id
	return nil
}

func (repo *WalletRepositoryImpl) GetByAddress(address fixedbytes.Address) ([]*models.Wallet, error) {
	var walletsDB []*db_models.WalletDB
	err := repo.table(repo.db).
		Where("address = ?", address).
		Order("id").
		Find(&walletsDB).Error

	if err != nil {
		return nil, err
	}

	return mapping.WalletDBsToWallets(walletsDB), nil
}

func (repo *WalletRepositoryImpl) GetAll() ([]*models.Wallet, error) {
	var walletsDB []*db_models.WalletDB
	if err := repo.table(repo.db).Order("address, id").Find(&walletsDB).Error; err != nil {
		return nil, err
	}

	return mapping.WalletDBsToWallets(walletsDB), nil
}

// GetAddressRange returns wallets with low <= address <= high, ordered by address.
func (repo *WalletRepositoryImpl) GetAddressRange(low fixedbytes.Address, high fixedbytes.Address) ([]*models.Wallet, error) {
	var walletsDB []*db_models.WalletDB
	err := repo.table(repo.db).
		Where("address >= ? AND address <= ?", low, high).
		Order("address, id").
		Find(&walletsDB).Error

	if err != nil {
		return nil, err
	}

	return mapping.WalletDBsToWallets(walletsDB), nil
}

// GetPrimaryExcluding returns primary wallets whose address differs from address, ordered by user.
func (repo *WalletRepositoryImpl) GetPrimaryExcluding(address fixedbytes.Address) ([]*models.Wallet, error) {
	var walletsDB []*db_models.WalletDB
	err := repo.table(repo.db).
		Where("is_primary = ? AND address <> ?", true, address).
		Order("user_id, id").
		Find(&walletsDB).Error

	if err != nil {
		return nil, err
	}

	return mapping.WalletDBsToWallets(walletsDB), nil
}

func (repo *WalletRepositoryImpl) Count() (int64, error) {
	var count int64
	if err := repo.table(repo.db).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *WalletRepositoryImpl) CountPerUser() ([]*db_models.UserWalletCount, error) {
	var counts []*db_models.UserWalletCount
	err := repo.table(repo.db).
		Select("user_id, COUNT(*) AS wallet_count").
		Group("user_id").
		Order("user_id").
		Scan(&counts).Error

	if err != nil {
		return nil, err
	}

	return counts, nil
}
