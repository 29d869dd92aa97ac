// Package database handles connections to the reconciliation database and
// classification of the errors it produces.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure MySQL connections based on the application's configuration.
//
// # Connect
//
// The Connect function establishes a pooled connection to the database and
// verifies it with a ping. Report queries borrow a connection per call and
// release it on every exit path.
//
// # Error Classification
//
// The package maps MySQL server error numbers onto the two categories the
// report feature cares about:
//
//   - IsMissingTable: the referenced table has not been provisioned yet
//     (ER_NO_SUCH_TABLE). The schema version probe absorbs this.
//   - IsTransient: operational errors worth retrying (dropped connections,
//     deadlock victims, lock wait timeouts).
//
// Everything else is unclassified and surfaces to the caller unchanged.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
