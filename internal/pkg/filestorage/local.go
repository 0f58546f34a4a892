package filestorage

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tvkcollege/admission-backend/internal/pkg/logger"
)

// MaxPhotoSize is the upload size cap for student photos.
const MaxPhotoSize = 1 << 20 // 1MB

// Upload validation errors
var (
	ErrNotAnImage  = errors.New("only image files are allowed")
	ErrFileTooBig  = errors.New("file exceeds the 1MB size limit")
	ErrInvalidPath = errors.New("invalid file path")
)

// LocalStorage saves student photos to a directory on the local filesystem.
type LocalStorage struct {
	basePath string // root directory where files are stored
	urlPath  string // URL prefix under which the directory is served
}

// NewLocalStorage creates a new LocalStorage instance. basePath is the
// directory on disk; urlPath is the public prefix (e.g. "/uploads").
func NewLocalStorage(basePath, urlPath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		urlPath:  strings.TrimRight(urlPath, "/"),
	}, nil
}

// SavePhoto validates and saves an uploaded student photo.
// The filename scheme is student-<unix ms>-<random>.<ext> to avoid collisions.
func (ls *LocalStorage) SavePhoto(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", nil // no file uploaded
	}

	if fileHeader.Size > MaxPhotoSize {
		return "", ErrFileTooBig
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	uniqueName := fmt.Sprintf("student-%d-%d%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
	dstPath := filepath.Join(ls.basePath, uniqueName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	// the declared Size is client-controlled, so the cap is enforced on the
	// actual stream as well
	written, err := io.Copy(dst, io.LimitReader(file, MaxPhotoSize+1))
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}
	if written > MaxPhotoSize {
		_ = os.Remove(dstPath)
		return "", ErrFileTooBig
	}

	accessiblePath := ls.urlPath + "/" + uniqueName
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", uniqueName).Msg("Photo saved")
	return accessiblePath, nil
}

// DeleteFile removes a stored file. It accepts the path as stored on the
// student record (e.g. "/uploads/student-123.jpg"). A missing file is not
// an error, so delete stays idempotent.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" {
		return nil // nothing to delete
	}

	filename := filepath.Base(filePath)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("%w: %s", ErrInvalidPath, filePath)
	}

	physicalPath := filepath.Join(ls.basePath, filename)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}

// GetFullPath returns the filesystem path for a stored URL path.
func (ls *LocalStorage) GetFullPath(fileURL string) string {
	filename := filepath.Base(fileURL)
	if filename == "" || filename == "." || filename == "/" {
		return ""
	}
	return filepath.Join(ls.basePath, filename)
}
