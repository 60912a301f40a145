// Package ledger contains the immutable audit records written alongside
// state changes: material consumption entries, wage transactions, stage
// transition log entries and stock shortfall alerts. Entries are append-only
// and are never updated or deleted once persisted.
package ledger
