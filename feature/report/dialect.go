package report

import (
	"fmt"

	"archive-reporter/feature/report/models"
)

// Dialect builds the parameterized statements the store executes. Keeping SQL
// behind an interface lets another backing store reuse the paging logic by
// supplying its own statement shapes.
type Dialect interface {
	// SchemaVersionSQL returns the statement selecting the latest installed
	// schema version (single row, single column).
	SchemaVersionSQL() string
	// MismatchPageSQL returns the bounded range query for one mismatch page.
	// When cursored is false the tuple predicate is omitted and the page
	// starts from the job's natural boundary.
	MismatchPageSQL(direction models.Direction, cursored bool) string
	// PhantomPageSQL is the phantom-table counterpart of MismatchPageSQL.
	PhantomPageSQL(direction models.Direction, cursored bool) string
}

// MySQLDialect implements Dialect for the MySQL reconciliation schema.
type MySQLDialect struct{}

const mismatchColumns = "job_id, collection_id, granule_id, filename, key_path, " +
	"archive_location, archive_etag, object_etag, archive_last_update, object_last_update, " +
	"archive_size_in_bytes, object_size_in_bytes, archive_storage_class, object_storage_class, " +
	"discrepancy_type, comment"

const phantomColumns = "job_id, collection_id, granule_id, filename, key_path, " +
	"archive_etag, archive_last_update, archive_size_in_bytes, archive_storage_class"

func (MySQLDialect) SchemaVersionSQL() string {
	return "SELECT version_id FROM schema_versions ORDER BY version_id DESC LIMIT 1"
}

func (MySQLDialect) MismatchPageSQL(direction models.Direction, cursored bool) string {
	return pageSQL(mismatchColumns, "reconcile_mismatch_report", direction, cursored)
}

func (MySQLDialect) PhantomPageSQL(direction models.Direction, cursored bool) string {
	return pageSQL(phantomColumns, "reconcile_phantom_report", direction, cursored)
}

// pageSQL builds a keyset range query over the composite order key
// (collection_id, granule_id, key_path), scoped to a job. MySQL's row
// constructor comparison keeps the tuple predicate index-friendly.
func pageSQL(columns, table string, direction models.Direction, cursored bool) string {
	comparator := ">"
	order := "ASC"
	if direction == models.DirectionPrevious {
		// Descending fetch so LIMIT selects the rows immediately preceding
		// the cursor; the store reverses the page before returning it.
		comparator = "<"
		order = "DESC"
	}

	predicate := "job_id = ?"
	if cursored {
		predicate += fmt.Sprintf(" AND (collection_id, granule_id, key_path) %s (?, ?, ?)", comparator)
	}

	return fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ORDER BY collection_id %s, granule_id %s, key_path %s LIMIT ?",
		columns, table, predicate, order, order, order,
	)
}
