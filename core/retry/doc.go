// Package retry provides a bounded retry-with-backoff wrapper for data
// access calls.
//
// The wrapper is deliberately dumb: it knows nothing about databases or
// storage. A Classifier predicate supplied by the caller decides which
// errors are transient (and therefore retried) and which surface
// immediately. The report feature pairs it with database.IsTransient so
// that dropped connections and deadlock victims are retried while
// missing-table and malformed-input conditions are not.
//
// # Usage
//
//	err := retry.Do(ctx, retry.DefaultPolicy(), database.IsTransient, func() error {
//	    return runQuery()
//	})
package retry
