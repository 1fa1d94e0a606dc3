package dto

import "github.com/spec-kit/storefront-service/internal/domain"

// UploadResponse describes a stored logo asset.
type UploadResponse struct {
	Filename         string `json:"filename"`
	OriginalFilename string `json:"original_filename"`
	FileURL          string `json:"file_url"`
	FileSize         int64  `json:"file_size"`
}

// NewUploadResponse projects a stored asset.
func NewUploadResponse(asset *domain.StoredAsset) UploadResponse {
	return UploadResponse{
		Filename:         asset.Filename,
		OriginalFilename: asset.OriginalFilename,
		FileURL:          asset.FileURL,
		FileSize:         asset.SizeBytes,
	}
}
