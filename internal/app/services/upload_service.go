package services

import (
	"mime/multipart"
	"path"
	"strings"

	"github.com/rs/zerolog"

	"github.com/petmily/petmily-api/internal/app/models/dto"
	"github.com/petmily/petmily-api/internal/pkg/apperrors"
	"github.com/petmily/petmily-api/internal/pkg/filestorage"
)

// uploadKinds maps an upload kind to its storage subdirectory. The kind
// decides where the image lands so each board keeps its own folder.
var uploadKinds = map[string]string{
	"volunteer":   "volunteer",
	"restaurants": "restaurants",
	"posts":       "posts",
}

// UploadService defines the interface for image upload operations
type UploadService interface {
	SaveImage(fileHeader *multipart.FileHeader, kind string) (*dto.UploadResponse, error)
}

// uploadServiceImpl implements UploadService
type uploadServiceImpl struct {
	storage     filestorage.FileStorage
	maxFileSize int64
	logger      zerolog.Logger
}

// NewUploadService creates a new UploadService
func NewUploadService(storage filestorage.FileStorage, maxFileSize int64, logger zerolog.Logger) UploadService {
	return &uploadServiceImpl{
		storage:     storage,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// SaveImage validates and stores an uploaded image, returning its public URL
func (s *uploadServiceImpl) SaveImage(fileHeader *multipart.FileHeader, kind string) (*dto.UploadResponse, error) {
	subPath, ok := uploadKinds[kind]
	if !ok {
		return nil, apperrors.ErrInvalidUploadKind
	}

	if fileHeader == nil || fileHeader.Size == 0 {
		return nil, apperrors.NewBadRequestError("no file was uploaded")
	}

	if fileHeader.Size > s.maxFileSize {
		return nil, apperrors.ErrFileTooLarge
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperrors.ErrNotAnImage
	}

	url, err := s.storage.SaveFileWithPath(fileHeader, subPath)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("kind", kind).Str("url", url).Msg("Image uploaded")

	return &dto.UploadResponse{
		URL:      url,
		Filename: path.Base(url),
	}, nil
}
