package models

import (
	"github.com/shopspring/decimal"

	"github.com/nivschuman/FixedBytesSQL/internal/fixedbytes"
)

type Wallet struct {
	Id         *int64             `json:"id"`          //surrogate id, nil until inserted
	UserId     int32              `json:"user_id"`     //owning user
	Address    fixedbytes.Address `json:"address"`     //20 byte identifier
	Name       string             `json:"name"`        //label of wallet
	IsPrimary  bool               `json:"is_primary"`  //primary wallet of user
	BalanceWei decimal.Decimal    `json:"balance_wei"` //balance in wei
}

func (wallet *Wallet) Equal(other *Wallet) bool {
	return wallet.Address == other.Address &&
		wallet.UserId == other.UserId &&
		wallet.Name == other.Name &&
		wallet.IsPrimary == other.IsPrimary &&
		wallet.BalanceWei.Equal(other.BalanceWei)
}

func (wallet *Wallet) IsEmpty() bool {
	return wallet.Address.IsZero()
}
