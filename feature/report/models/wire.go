package models

// Wire representations of the report records.
//
// JSON has no 64-bit integer type, and the producing system does not cap job
// ids, sizes, or epoch timestamps at 32 bits. These output types widen such
// fields to float64 at the boundary so they survive serialization; internal
// code keeps the exact int64 values.

// CursorOutput is the wire form of a Cursor.
type CursorOutput struct {
	JobID        float64 `json:"job_id"`
	CollectionID string  `json:"collection_id"`
	GranuleID    string  `json:"granule_id"`
	KeyPath      string  `json:"key_path"`
}

// NewCursorOutput converts a Cursor for serialization.
func NewCursorOutput(c Cursor) CursorOutput {
	return CursorOutput{
		JobID:        float64(c.JobID),
		CollectionID: c.CollectionID,
		GranuleID:    c.GranuleID,
		KeyPath:      c.KeyPath,
	}
}

// MismatchOutput is the wire form of a Mismatch.
type MismatchOutput struct {
	JobID               float64 `json:"job_id"`
	CollectionID        string  `json:"collection_id"`
	GranuleID           string  `json:"granule_id"`
	Filename            string  `json:"filename"`
	KeyPath             string  `json:"key_path"`
	ArchiveLocation     string  `json:"archive_location"`
	ArchiveEtag         string  `json:"archive_etag"`
	ObjectEtag          string  `json:"object_etag"`
	ArchiveLastUpdate   float64 `json:"archive_last_update"`
	ObjectLastUpdate    float64 `json:"object_last_update"`
	ArchiveSizeInBytes  float64 `json:"archive_size_in_bytes"`
	ObjectSizeInBytes   float64 `json:"object_size_in_bytes"`
	ArchiveStorageClass string  `json:"archive_storage_class"`
	ObjectStorageClass  string  `json:"object_storage_class"`
	DiscrepancyType     string  `json:"discrepancy_type"`
	Comment             *string `json:"comment"`
}

// NewMismatchOutput converts a Mismatch for serialization.
func NewMismatchOutput(m Mismatch) MismatchOutput {
	return MismatchOutput{
		JobID:               float64(m.JobID),
		CollectionID:        m.CollectionID,
		GranuleID:           m.GranuleID,
		Filename:            m.Filename,
		KeyPath:             m.KeyPath,
		ArchiveLocation:     m.ArchiveLocation,
		ArchiveEtag:         m.ArchiveEtag,
		ObjectEtag:          m.ObjectEtag,
		ArchiveLastUpdate:   float64(m.ArchiveLastUpdate),
		ObjectLastUpdate:    float64(m.ObjectLastUpdate),
		ArchiveSizeInBytes:  float64(m.ArchiveSizeInBytes),
		ObjectSizeInBytes:   float64(m.ObjectSizeInBytes),
		ArchiveStorageClass: m.ArchiveStorageClass,
		ObjectStorageClass:  m.ObjectStorageClass,
		DiscrepancyType:     m.DiscrepancyType,
		Comment:             m.Comment,
	}
}

// PhantomOutput is the wire form of a Phantom.
type PhantomOutput struct {
	JobID               float64 `json:"job_id"`
	CollectionID        string  `json:"collection_id"`
	GranuleID           string  `json:"granule_id"`
	Filename            string  `json:"filename"`
	KeyPath             string  `json:"key_path"`
	ArchiveEtag         string  `json:"archive_etag"`
	ArchiveLastUpdate   float64 `json:"archive_last_update"`
	ArchiveSizeInBytes  float64 `json:"archive_size_in_bytes"`
	ArchiveStorageClass string  `json:"archive_storage_class"`
}

// NewPhantomOutput converts a Phantom for serialization.
func NewPhantomOutput(p Phantom) PhantomOutput {
	return PhantomOutput{
		JobID:               float64(p.JobID),
		CollectionID:        p.CollectionID,
		GranuleID:           p.GranuleID,
		Filename:            p.Filename,
		KeyPath:             p.KeyPath,
		ArchiveEtag:         p.ArchiveEtag,
		ArchiveLastUpdate:   float64(p.ArchiveLastUpdate),
		ArchiveSizeInBytes:  float64(p.ArchiveSizeInBytes),
		ArchiveStorageClass: p.ArchiveStorageClass,
	}
}

// MismatchPageOutput is one page of mismatches plus the cursors needed to
// continue paging in either direction. Items are always in ascending order.
type MismatchPageOutput struct {
	Items       []MismatchOutput `json:"items"`
	StartCursor *CursorOutput    `json:"start_cursor,omitempty"`
	EndCursor   *CursorOutput    `json:"end_cursor,omitempty"`
}

// NewMismatchPageOutput builds the wire page. Cursors are derived from the
// first and last records; an empty page has no cursors.
func NewMismatchPageOutput(page []Mismatch) MismatchPageOutput {
	out := MismatchPageOutput{Items: make([]MismatchOutput, 0, len(page))}
	for _, m := range page {
		out.Items = append(out.Items, NewMismatchOutput(m))
	}
	if len(page) > 0 {
		start := NewCursorOutput(page[0].Cursor())
		end := NewCursorOutput(page[len(page)-1].Cursor())
		out.StartCursor = &start
		out.EndCursor = &end
	}
	return out
}

// PhantomPageOutput is one page of phantoms plus continuation cursors.
type PhantomPageOutput struct {
	Items       []PhantomOutput `json:"items"`
	StartCursor *CursorOutput   `json:"start_cursor,omitempty"`
	EndCursor   *CursorOutput   `json:"end_cursor,omitempty"`
}

// NewPhantomPageOutput builds the wire page for phantoms.
func NewPhantomPageOutput(page []Phantom) PhantomPageOutput {
	out := PhantomPageOutput{Items: make([]PhantomOutput, 0, len(page))}
	for _, p := range page {
		out.Items = append(out.Items, NewPhantomOutput(p))
	}
	if len(page) > 0 {
		start := NewCursorOutput(page[0].Cursor())
		end := NewCursorOutput(page[len(page)-1].Cursor())
		out.StartCursor = &start
		out.EndCursor = &end
	}
	return out
}
