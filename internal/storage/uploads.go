package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/storefront-service/internal/domain"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// allowedExtensions is the upload allow-list: common image formats, PDF,
// and Adobe Illustrator vector art. Typing is by filename suffix only;
// content is not sniffed.
var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".pdf":  {},
	".ai":   {},
}

// UploadStore writes logo assets to a local directory under
// collision-resistant generated names.
type UploadStore struct {
	dir        string
	publicPath string
}

// NewUploadStore creates the upload directory if needed and returns a store.
func NewUploadStore(dir, publicPath string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadStore{dir: dir, publicPath: strings.TrimSuffix(publicPath, "/")}, nil
}

// Dir returns the directory assets are written to.
func (s *UploadStore) Dir() string {
	return s.dir
}

// Store validates the extension, writes the content under a generated name
// preserving the extension, and returns the stored asset description.
func (s *UploadStore) Store(originalFilename string, content io.Reader) (*domain.StoredAsset, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, apperrors.NewUnsupportedType("file type not allowed; upload JPG, PNG, PDF, or AI files")
	}

	filename := uuid.NewString() + ext
	path := filepath.Join(s.dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	written, err := io.Copy(dst, content)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	return &domain.StoredAsset{
		Filename:         filename,
		OriginalFilename: originalFilename,
		FileURL:          s.publicPath + "/" + filename,
		SizeBytes:        written,
	}, nil
}
