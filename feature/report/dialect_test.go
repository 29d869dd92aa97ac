package report

import (
	"testing"

	"archive-reporter/feature/report/models"

	"github.com/stretchr/testify/assert"
)

func TestMySQLDialect_MismatchPageSQL(t *testing.T) {
	d := MySQLDialect{}

	t.Run("NextCursored", func(t *testing.T) {
		sql := d.MismatchPageSQL(models.DirectionNext, true)
		assert.Contains(t, sql, "(collection_id, granule_id, key_path) > (?, ?, ?)")
		assert.Contains(t, sql, "ORDER BY collection_id ASC, granule_id ASC, key_path ASC")
		assert.Contains(t, sql, "LIMIT ?")
	})

	t.Run("PreviousCursored", func(t *testing.T) {
		sql := d.MismatchPageSQL(models.DirectionPrevious, true)
		assert.Contains(t, sql, "(collection_id, granule_id, key_path) < (?, ?, ?)")
		assert.Contains(t, sql, "ORDER BY collection_id DESC, granule_id DESC, key_path DESC")
	})

	t.Run("UncursoredOmitsTuplePredicate", func(t *testing.T) {
		sql := d.MismatchPageSQL(models.DirectionNext, false)
		assert.NotContains(t, sql, "(collection_id, granule_id, key_path)")
		assert.Contains(t, sql, "WHERE job_id = ?")
	})
}

func TestMySQLDialect_PhantomPageSQL(t *testing.T) {
	d := MySQLDialect{}

	sql := d.PhantomPageSQL(models.DirectionNext, true)
	assert.Contains(t, sql, "FROM reconcile_phantom_report")
	assert.NotContains(t, sql, "object_etag")
}

func TestMySQLDialect_SchemaVersionSQL(t *testing.T) {
	sql := MySQLDialect{}.SchemaVersionSQL()
	assert.Contains(t, sql, "FROM schema_versions")
	assert.Contains(t, sql, "LIMIT 1")
}
