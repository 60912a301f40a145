// Package order contains the Order aggregate and its Status state machine.
//
// An order is a customer production request for a total quantity of one
// product. Order entry creates the row; the production core only ever
// recomputes its status from the stages of its bundles: the first scan moves
// it to IN_PROGRESS, and it becomes DONE when every bundle reaches a terminal
// stage with all non-rejected bundles complete.
package order
