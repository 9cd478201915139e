package services

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmily/petmily-api/internal/pkg/apperrors"
	"github.com/petmily/petmily-api/internal/pkg/filestorage"
)

// buildFileHeader assembles a multipart file header the way gin would hand
// it to a controller.
func buildFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="image"; filename="` + filename + `"`}
	header["Content-Type"] = []string{contentType}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	_, fileHeader, err := req.FormFile("image")
	require.NoError(t, err)
	return fileHeader
}

func newTestUploadService(t *testing.T, maxSize int64) UploadService {
	t.Helper()
	dir, err := os.MkdirTemp("", "uploads")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	storage, err := filestorage.NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)

	return NewUploadService(storage, maxSize, zerolog.Nop())
}

func TestSaveImage(t *testing.T) {
	svc := newTestUploadService(t, 5<<20)

	fileHeader := buildFileHeader(t, "dog.png", "image/png", []byte("png-bytes"))

	result, err := svc.SaveImage(fileHeader, "volunteer")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.URL, "/uploads/volunteer/"))
	assert.True(t, strings.HasSuffix(result.URL, ".png"))
	assert.NotEmpty(t, result.Filename)
}

func TestSaveImageRejectsUnknownKind(t *testing.T) {
	svc := newTestUploadService(t, 5<<20)

	fileHeader := buildFileHeader(t, "dog.png", "image/png", []byte("png-bytes"))

	_, err := svc.SaveImage(fileHeader, "avatars")
	assert.ErrorIs(t, err, apperrors.ErrInvalidUploadKind)
}

func TestSaveImageRejectsNonImage(t *testing.T) {
	svc := newTestUploadService(t, 5<<20)

	fileHeader := buildFileHeader(t, "notes.txt", "text/plain", []byte("hello"))

	_, err := svc.SaveImage(fileHeader, "posts")
	assert.ErrorIs(t, err, apperrors.ErrNotAnImage)
}

func TestSaveImageRejectsOversizedFile(t *testing.T) {
	svc := newTestUploadService(t, 8)

	fileHeader := buildFileHeader(t, "dog.png", "image/png", []byte("more-than-eight-bytes"))

	_, err := svc.SaveImage(fileHeader, "posts")
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}
