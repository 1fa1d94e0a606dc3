package domain

// StoredAsset describes an uploaded file after it has been written to disk.
// Customizations reference assets by URL only; there is no foreign key back
// to this record.
type StoredAsset struct {
	Filename         string
	OriginalFilename string
	FileURL          string
	SizeBytes        int64
}
