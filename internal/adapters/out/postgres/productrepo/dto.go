// Package productrepo provides data transfer objects and mapping functions for
// the product catalog. Products and their bills of materials are mastered by
// an upstream system; this repository only reads them.
package productrepo

import (
	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for product rows.
type ProductDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	WagePerPiece decimal.Decimal `gorm:"type:decimal(20,4)"`
	BOMLines     []BOMLineDTO    `gorm:"foreignKey:ProductID"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// BOMLineDTO represents one bill-of-materials row of a product.
type BOMLineDTO struct {
	ProductID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MaterialID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	QuantityPerUnit  decimal.Decimal `gorm:"type:decimal(20,4)"`
	TolerancePercent decimal.Decimal `gorm:"type:decimal(20,4)"`
}

// TableName specifies the database table name for bill-of-materials rows.
func (BOMLineDTO) TableName() string {
	return "bom_lines"
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]product.BOMLine, 0, len(dto.BOMLines))
	for _, lineDTO := range dto.BOMLines {
		materialID, lineErr := kernel.UUIDFromBytes(lineDTO.MaterialID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := product.NewBOMLine(materialID, lineDTO.QuantityPerUnit, lineDTO.TolerancePercent)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return product.RestoreProduct(id, dto.Name, dto.WagePerPiece, lines)
}
