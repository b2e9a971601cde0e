package common

import (
	"github.com/google/uuid"
)

// NewUploadID generates a unique upload ID with the "upload_" prefix
// Format: upload_<uuid>
func NewUploadID() string {
	return "upload_" + uuid.New().String()
}

// NewPointID generates a raw UUID suitable for vector store point IDs
func NewPointID() string {
	return uuid.New().String()
}
