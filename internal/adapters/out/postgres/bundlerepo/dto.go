// Package bundlerepo provides data transfer objects and mapping functions for bundle persistence.
// This package implements the repository pattern for the bundle domain aggregate, handling
// the conversion between domain entities and database representations.
package bundlerepo

import (
	"spktrack/internal/core/domain/model/bundle"
	"spktrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BundleDTO represents the database structure for persisting bundle aggregates.
// The code column is unique so a scanned label resolves to exactly one bundle;
// generated codes fold the order id into the prefix to satisfy that globally.
type BundleDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	Code     string    `gorm:"uniqueIndex"`
	Quantity int
	Stage    int `gorm:"index"`
	Paid     bool
	Consumed bool
}

// TableName specifies the database table name for bundle entities.
// Overrides GORM's default naming convention to use "bundles".
func (BundleDTO) TableName() string {
	return "bundles"
}

// fromDomain converts a bundle domain aggregate to its database representation.
func fromDomain(aggregate *bundle.Bundle) BundleDTO {
	return BundleDTO{
		ID:       aggregate.ID().Bytes(),
		OrderID:  aggregate.OrderID().Bytes(),
		Code:     aggregate.Code(),
		Quantity: aggregate.Quantity(),
		Stage:    int(aggregate.Stage()),
		Paid:     aggregate.IsPaid(),
		Consumed: aggregate.IsConsumed(),
	}
}

// toDomain converts a database DTO to a bundle domain aggregate.
// Reconstructs the complete aggregate including stage and side-effect flags
// using RestoreBundle.
func toDomain(dto BundleDTO) (*bundle.Bundle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return bundle.RestoreBundle(
		id, orderID, dto.Code, dto.Quantity,
		bundle.Stage(dto.Stage), dto.Paid, dto.Consumed)
}
