// Package stockrepo provides data transfer objects and mapping functions for
// material stock persistence.
package stockrepo

import (
	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/stock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaterialStockDTO represents the database structure for material stock rows.
// CurrentStock may go negative under the permissive draw policy.
type MaterialStockDTO struct {
	MaterialID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	CurrentStock decimal.Decimal `gorm:"type:decimal(20,4)"`
}

// TableName specifies the database table name for material stock rows.
func (MaterialStockDTO) TableName() string {
	return "material_stocks"
}

// fromDomain converts a material stock aggregate to its database representation.
func fromDomain(aggregate *stock.MaterialStock) MaterialStockDTO {
	return MaterialStockDTO{
		MaterialID:   aggregate.MaterialID().Bytes(),
		Name:         aggregate.Name(),
		CurrentStock: aggregate.CurrentStock(),
	}
}

// toDomain converts a database DTO to a material stock aggregate.
func toDomain(dto MaterialStockDTO) (*stock.MaterialStock, error) {
	materialID, err := kernel.UUIDFromBytes(dto.MaterialID[:])
	if err != nil {
		return nil, err
	}

	return stock.RestoreMaterialStock(materialID, dto.Name, dto.CurrentStock)
}
