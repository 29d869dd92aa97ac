package models

import "fmt"

// Direction selects which side of the cursor a page is read from.
type Direction string

const (
	// DirectionNext pages forward; the cursor is an exclusive lower bound.
	DirectionNext Direction = "next"
	// DirectionPrevious pages backward; the cursor is an exclusive upper bound.
	DirectionPrevious Direction = "previous"
)

// ParseDirection converts a request parameter into a Direction.
// An empty value defaults to DirectionNext.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case "":
		return DirectionNext, nil
	case DirectionNext:
		return DirectionNext, nil
	case DirectionPrevious:
		return DirectionPrevious, nil
	default:
		return "", fmt.Errorf("unknown direction %q (want next or previous)", s)
	}
}

// ReconciliationStatus is the lifecycle state of a reconciliation job, as
// written by the external reconciliation process.
type ReconciliationStatus int

const (
	StatusGettingStorageList ReconciliationStatus = 1
	StatusStaged             ReconciliationStatus = 2
	StatusGeneratingReports  ReconciliationStatus = 3
	StatusError              ReconciliationStatus = 4
	StatusSuccess            ReconciliationStatus = 5
)

func (s ReconciliationStatus) String() string {
	switch s {
	case StatusGettingStorageList:
		return "getting_storage_list"
	case StatusStaged:
		return "staged"
	case StatusGeneratingReports:
		return "generating_reports"
	case StatusError:
		return "error"
	case StatusSuccess:
		return "success"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Cursor is a position marker in a job's report, not a row reference.
// Paging resumes strictly after (or before) this tuple, so the cursor stays
// valid even if the record it was derived from is deleted.
type Cursor struct {
	// JobID scopes the cursor to a single reconciliation job.
	JobID int64
	// CollectionID is the first component of the composite order key.
	CollectionID string
	// GranuleID is the second component of the composite order key.
	GranuleID string
	// KeyPath is the third component of the composite order key.
	KeyPath string
}

// IsEmpty reports whether the cursor points at a natural boundary
// (start of the job for next pages, end of the job for previous pages).
func (c Cursor) IsEmpty() bool {
	return c.CollectionID == "" && c.GranuleID == "" && c.KeyPath == ""
}

// Mismatch is a detected discrepancy between an archived copy and its source
// object, produced by the external reconciliation process. The reporter only
// reads these records.
//
// (CollectionID, GranuleID, KeyPath) is unique within a job and is the
// natural sort and cursor key.
type Mismatch struct {
	JobID        int64
	CollectionID string
	GranuleID    string
	Filename     string
	KeyPath      string

	// ArchiveLocation is the bucket holding the archived copy.
	ArchiveLocation string

	ArchiveEtag string
	ObjectEtag  string

	// Last-update instants as epoch milliseconds. Kept as int64 internally;
	// widening to float64 happens only at the wire boundary.
	ArchiveLastUpdate int64
	ObjectLastUpdate  int64

	ArchiveSizeInBytes int64
	ObjectSizeInBytes  int64

	ArchiveStorageClass string
	ObjectStorageClass  string

	// DiscrepancyType classifies the mismatch (e.g. "etag", "size").
	DiscrepancyType string
	// Comment is optional free text attached by the producer.
	Comment *string
}

// Cursor returns the position marker for this record.
func (m Mismatch) Cursor() Cursor {
	return Cursor{
		JobID:        m.JobID,
		CollectionID: m.CollectionID,
		GranuleID:    m.GranuleID,
		KeyPath:      m.KeyPath,
	}
}

// Phantom is an archive catalog entry whose backing object is missing from
// the object store. It shares the mismatch order key and paging semantics.
type Phantom struct {
	JobID        int64
	CollectionID string
	GranuleID    string
	Filename     string
	KeyPath      string

	ArchiveEtag         string
	ArchiveLastUpdate   int64
	ArchiveSizeInBytes  int64
	ArchiveStorageClass string
}

// Cursor returns the position marker for this record.
func (p Phantom) Cursor() Cursor {
	return Cursor{
		JobID:        p.JobID,
		CollectionID: p.CollectionID,
		GranuleID:    p.GranuleID,
		KeyPath:      p.KeyPath,
	}
}

// ObjectCheck is the result of statting a reported object against the live
// object store.
type ObjectCheck struct {
	KeyPath      string `json:"key_path"`
	Found        bool   `json:"found"`
	Etag         string `json:"etag"`
	SizeInBytes  int64  `json:"size_in_bytes"`
	LastModified int64  `json:"last_modified"`
	StorageClass string `json:"storage_class"`
}
