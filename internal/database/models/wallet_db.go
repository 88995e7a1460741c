package db_models

import (
	db_types "github.com/nivschuman/FixedBytesSQL/internal/database/types"
	"github.com/nivschuman/FixedBytesSQL/internal/fixedbytes"
)

type WalletDB struct {
	Id         int64              `gorm:"primaryKey;autoIncrement;column:id"`       // Surrogate id (primary key)
	UserId     int32              `gorm:"column:user_id;not null"`                  // Owning user
	Address    fixedbytes.Address `gorm:"column:address;not null"`                  // Identifier, column type chosen per dialect
	Name       string             `gorm:"column:name;size:255"`                     // Label of wallet
	IsPrimary  bool               `gorm:"column:is_primary;not null;default:false"` // Primary wallet of user
	BalanceWei db_types.Decimal   `gorm:"column:balance_wei;not null;default:0"`    // Balance in wei
}

func (WalletDB) TableName() string {
	return "user_wallets"
}

// UserWalletCount is the result row of counting wallets per user.
type UserWalletCount struct {
	UserId      int32 `gorm:"column:user_id"`
	WalletCount int64 `gorm:"column:wallet_count"`
}
