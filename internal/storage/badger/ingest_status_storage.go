package badger

import (
	"context"
	"fmt"

	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/rcastellano/ava/internal/models"
	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"
)

// IngestStatusStorage persists the latest ingest record per profile.
// Records are keyed by profile key, so each save replaces the previous one.
type IngestStatusStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewIngestStatusStorage creates a new IngestStatusStorage instance
func NewIngestStatusStorage(db *BadgerDB, logger arbor.ILogger) interfaces.IngestStatusStorage {
	return &IngestStatusStorage{
		db:     db,
		logger: logger,
	}
}

// Save stores or replaces the ingest record for its profile
func (s *IngestStatusStorage) Save(ctx context.Context, status *models.IngestStatus) error {
	if status == nil || status.ProfileKey == "" {
		return fmt.Errorf("ingest status requires a profile key")
	}

	if err := s.db.Store().Upsert(status.ProfileKey, status); err != nil {
		return fmt.Errorf("failed to save ingest status: %w", err)
	}

	s.logger.Debug().
		Str("profile", status.ProfileKey).
		Str("source_id", status.SourceID).
		Int("chunks", status.ChunkCount).
		Msg("Ingest status saved")

	return nil
}

// Get returns the latest record for the profile, or ErrKeyNotFound
func (s *IngestStatusStorage) Get(ctx context.Context, profileKey string) (*models.IngestStatus, error) {
	var status models.IngestStatus
	err := s.db.Store().Get(profileKey, &status)
	if err == badgerhold.ErrNotFound {
		return nil, interfaces.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ingest status: %w", err)
	}
	return &status, nil
}
