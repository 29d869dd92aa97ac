// Package report serves read-only views over the reconciliation data store:
// pages of mismatch and phantom records, the installed schema version, and
// live spot checks of reported objects.
//
// # Keyset Pagination
//
// Pages are read with a range predicate over the composite order key
// (collection_id, granule_id, key_path), scoped to a job. The cursor is a
// fence position, not a row reference: a next page selects rows strictly
// greater than the tuple, a previous page rows strictly less than it. Each
// page is one bounded query; there is no offset arithmetic, so pages stay
// stable while the external reconciliation process inserts or deletes rows.
// Previous pages are fetched in descending order and reversed in memory, so
// callers always receive ascending order.
//
// # Schema Version Probe
//
// GetSchemaVersion reads the latest row of the append-only schema_versions
// table. A missing table is not an error: deployments that predate schema
// versioning report version 1.
//
// # Error Handling
//
// Transient store errors (dropped connections, deadlock victims) are retried
// with bounded backoff via core/retry; missing-table and invalid-input
// conditions are not. A failed call never returns partial results, and an
// empty page is a successful end-of-data result.
//
// # Structure
//
//   - models: record, cursor, and wire (float64-widened) types
//   - dialect.go: per-store parameterized statement builders
//   - store.go: query execution, fixed-order row decoding, ordering contract
//   - service.go: input validation and object spot checks
//   - handler.go: the Fiber HTTP surface
package report
