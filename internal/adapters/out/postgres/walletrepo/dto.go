// Package walletrepo provides data transfer objects and mapping functions for
// worker wallet persistence.
package walletrepo

import (
	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/wallet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletDTO represents the database structure for persisting worker wallets.
type WalletDTO struct {
	WorkerID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Balance  decimal.Decimal `gorm:"type:decimal(20,4)"`
}

// TableName specifies the database table name for wallet entities.
func (WalletDTO) TableName() string {
	return "wallets"
}

// fromDomain converts a wallet domain aggregate to its database representation.
func fromDomain(aggregate *wallet.Wallet) WalletDTO {
	return WalletDTO{
		WorkerID: aggregate.WorkerID().Bytes(),
		Balance:  aggregate.Balance(),
	}
}

// toDomain converts a database DTO to a wallet domain aggregate.
func toDomain(dto WalletDTO) (*wallet.Wallet, error) {
	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	return wallet.RestoreWallet(workerID, dto.Balance)
}
