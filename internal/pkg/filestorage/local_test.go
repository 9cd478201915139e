package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	_, fileHeader, err := req.FormFile("file")
	require.NoError(t, err)
	return fileHeader
}

func TestSaveFileWithPath(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)

	fileHeader := buildFileHeader(t, "dog.png", []byte("png-bytes"))

	url, err := storage.SaveFileWithPath(fileHeader, "volunteer")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/volunteer/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	// The file landed in the subdirectory with the generated name
	saved := filepath.Join(dir, "volunteer", filepath.Base(url))
	content, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), content)
}

func TestSaveFileGeneratesUniqueNames(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)

	first, err := storage.SaveFile(buildFileHeader(t, "dog.png", []byte("a")))
	require.NoError(t, err)
	second, err := storage.SaveFile(buildFileHeader(t, "dog.png", []byte("b")))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)

	url, err := storage.SaveFileWithPath(buildFileHeader(t, "dog.png", []byte("bytes")), "posts")
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(url))

	_, statErr := os.Stat(filepath.Join(dir, "posts", filepath.Base(url)))
	assert.True(t, os.IsNotExist(statErr))

	// Deleting an already removed file is not an error
	assert.NoError(t, storage.DeleteFile(url))
}

func TestDeleteFileRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)

	assert.Error(t, storage.DeleteFile("/uploads/../etc/passwd"))
}
