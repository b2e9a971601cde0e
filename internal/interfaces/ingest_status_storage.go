package interfaces

import (
	"context"

	"github.com/rcastellano/ava/internal/models"
)

// IngestStatusStorage persists the latest ingest record per profile so
// status survives restarts even though ephemeral indexes do not.
type IngestStatusStorage interface {
	// Save stores or replaces the ingest record for its profile
	Save(ctx context.Context, status *models.IngestStatus) error

	// Get returns the latest record for the profile, or ErrKeyNotFound
	Get(ctx context.Context, profileKey string) (*models.IngestStatus, error)
}
