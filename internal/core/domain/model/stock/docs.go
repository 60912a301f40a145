// Package stock contains the MaterialStock aggregate and the draw policy.
//
// Material stock is mutated only by the Inventory Ledger, inside the same
// transaction as the bundle stage change that triggered the draw. The policy
// decides whether a shortfall blocks production (strict) or records an
// advisory alert and lets the balance go negative (permissive).
package stock
