// Package kernel contains shared value objects used across all domain models.
//
// The kernel provides the building blocks that every aggregate relies on:
//
//   - UUID: immutable identifier value object wrapping github.com/google/uuid,
//     used as the identity of orders, bundles, products, materials, and wallets.
//   - ScanCode: the classified form of a decoded scan payload, distinguishing
//     bundle UUIDs from human-readable bundle labels and rejecting anything
//     that parses as neither.
//
// Kernel types follow the value object pattern: construction through factory
// functions, validation of invariants at creation time, and immutability after
// construction. The zero value of each type is invalid and detectable via
// Validate().
package kernel
