// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the production tracking system. It implements
// complex business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - BundleSplitter: A domain service for decomposing orders into production bundles
//   - InventoryLedger: A domain service for drawing raw material at cutting
//   - WageLedger: A domain service for crediting piece wages at completion
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
