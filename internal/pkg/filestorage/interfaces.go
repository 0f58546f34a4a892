package filestorage

import "mime/multipart"

// PhotoStorage defines the interface for student photo storage operations
type PhotoStorage interface {
	// SavePhoto validates and saves an uploaded photo, returning the
	// relative URL path to store on the student record
	SavePhoto(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a stored file given its stored URL path
	DeleteFile(filePath string) error
}
