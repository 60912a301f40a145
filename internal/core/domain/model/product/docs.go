// Package product contains the production core's read-only view of product
// configuration: the per-piece wage rate and the bill of materials (BOM).
// The product catalog owns these records; the core only reads them to compute
// material draws at the cutting point and wage accruals at completion.
package product
