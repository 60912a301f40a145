// Package bundle contains the Bundle aggregate and its Stage state machine.
//
// A bundle is a physical sub-lot of a production order, identified by a
// scannable code and moved through the factory pipeline one stage at a time:
// NEW -> CUTTING -> SEWING -> FINISHING -> DONE, with REJECTED reachable from
// any non-terminal stage. The aggregate enforces the transition graph and
// carries the two one-way idempotence flags (consumed, paid) that guarantee
// material draw and wage accrual happen at most once per bundle.
package bundle
