package models_test

import (
	"encoding/json"
	"testing"

	"archive-reporter/feature/report/models"

	"github.com/stretchr/testify/assert"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    models.Direction
		wantErr bool
	}{
		{"Next", "next", models.DirectionNext, false},
		{"Previous", "previous", models.DirectionPrevious, false},
		{"EmptyDefaultsToNext", "", models.DirectionNext, false},
		{"Garbage", "sideways", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := models.ParseDirection(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCursor_IsEmpty(t *testing.T) {
	assert.True(t, models.Cursor{JobID: 42}.IsEmpty())
	assert.False(t, models.Cursor{JobID: 42, CollectionID: "A"}.IsEmpty())
	assert.False(t, models.Cursor{JobID: 42, KeyPath: "k1"}.IsEmpty())
}

func TestMismatch_Cursor(t *testing.T) {
	m := models.Mismatch{
		JobID:        42,
		CollectionID: "A",
		GranuleID:    "1",
		KeyPath:      "k1",
		Filename:     "file.h5",
	}

	c := m.Cursor()
	assert.Equal(t, models.Cursor{JobID: 42, CollectionID: "A", GranuleID: "1", KeyPath: "k1"}, c)
}

func TestNewMismatchOutput_WidensLargeValues(t *testing.T) {
	// Values above the 32-bit signed range must survive serialization.
	big := int64(9_000_000_000)
	m := models.Mismatch{
		JobID:              big,
		ArchiveLastUpdate:  big,
		ObjectLastUpdate:   big,
		ArchiveSizeInBytes: big,
		ObjectSizeInBytes:  big,
	}

	out := models.NewMismatchOutput(m)
	assert.Equal(t, float64(big), out.JobID)
	assert.Equal(t, float64(big), out.ArchiveSizeInBytes)

	raw, err := json.Marshal(out)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "9000000000")
}

func TestNewMismatchPageOutput(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		out := models.NewMismatchPageOutput(nil)
		assert.Empty(t, out.Items)
		assert.Nil(t, out.StartCursor)
		assert.Nil(t, out.EndCursor)

		// Empty page serializes with an empty list, not null.
		raw, err := json.Marshal(out)
		assert.NoError(t, err)
		assert.Contains(t, string(raw), `"items":[]`)
	})

	t.Run("CursorsFromEnds", func(t *testing.T) {
		page := []models.Mismatch{
			{JobID: 42, CollectionID: "A", GranuleID: "1", KeyPath: "k1"},
			{JobID: 42, CollectionID: "A", GranuleID: "1", KeyPath: "k2"},
			{JobID: 42, CollectionID: "B", GranuleID: "1", KeyPath: "k1"},
		}

		out := models.NewMismatchPageOutput(page)
		assert.Len(t, out.Items, 3)
		assert.Equal(t, "k1", out.StartCursor.KeyPath)
		assert.Equal(t, "A", out.StartCursor.CollectionID)
		assert.Equal(t, "B", out.EndCursor.CollectionID)
	})
}

func TestReconciliationStatus_String(t *testing.T) {
	assert.Equal(t, "staged", models.StatusStaged.String())
	assert.Equal(t, "success", models.StatusSuccess.String())
	assert.Equal(t, "unknown(9)", models.ReconciliationStatus(9).String())
}
