package rag

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/rcastellano/ava/internal/common"
	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/rcastellano/ava/internal/models"
	"github.com/rcastellano/ava/internal/services/parser"
	"github.com/ternarybob/arbor"
)

// DefaultSystemType is assumed when a chat request omits system_type.
const DefaultSystemType = "general"

// Service is the RAG orchestrator: it owns the profile registry and one
// engine per profile, and routes every question and document to the right
// engine.
type Service struct {
	registry *Registry
	engines  map[string]*Engine
	parsers  []interfaces.DocumentParser
	uploads  interfaces.KeyValueStorage
	statuses interfaces.IngestStatusStorage
	logger   arbor.ILogger
}

var _ interfaces.RagService = (*Service)(nil)

func NewService(
	registry *Registry,
	engines map[string]*Engine,
	parsers []interfaces.DocumentParser,
	uploads interfaces.KeyValueStorage,
	statuses interfaces.IngestStatusStorage,
	logger arbor.ILogger,
) *Service {
	return &Service{
		registry: registry,
		engines:  engines,
		parsers:  parsers,
		uploads:  uploads,
		statuses: statuses,
		logger:   logger,
	}
}

// Ask answers a question against the requested profile. A profile with an
// attachment-triggered override short-circuits generation entirely when the
// request carries attachment content.
func (s *Service) Ask(ctx context.Context, req *interfaces.AskRequest) (*interfaces.AskResponse, error) {
	if req == nil || strings.TrimSpace(req.Question) == "" {
		return nil, fmt.Errorf("question must not be empty: %w", models.ErrInvalidRequest)
	}

	systemType := req.SystemType
	if systemType == "" {
		systemType = DefaultSystemType
	}

	profile, err := s.registry.Resolve(systemType)
	if err != nil {
		return nil, err
	}
	engine := s.engines[systemType]

	if profile.Override != nil && profile.Override.Trigger == models.TriggerAttachment && len(req.Attachment) > 0 {
		s.logger.Info().
			Str("system_type", systemType).
			Int("attachment_segments", len(req.Attachment)).
			Msg("Response override triggered by attachment")
		return &interfaces.AskResponse{
			Answer:  profile.Override.Response,
			Sources: []string{},
		}, nil
	}

	// Without an override, attachment content becomes the ephemeral corpus
	// for this and subsequent questions.
	if len(req.Attachment) > 0 && profile.CorpusMode == models.CorpusEphemeral {
		doc := models.Document{
			RawText:  strings.Join(req.Attachment, "\n"),
			SourceID: common.NewUploadID(),
		}
		if _, err := engine.Ingest(ctx, doc); err != nil {
			return nil, err
		}
	}

	answer, err := engine.Answer(ctx, req.Question, req.History)
	if err != nil {
		if answer != nil {
			// Generation failed after retrieval succeeded. Surface the
			// sources with the error.
			return &interfaces.AskResponse{Sources: answer.SourceTexts()}, err
		}
		return nil, err
	}

	return &interfaces.AskResponse{
		Answer:  answer.Text,
		Sources: answer.SourceTexts(),
	}, nil
}

// Ingest parses an uploaded document and rebuilds the profile's index from
// it. The raw upload is retained so a document can be reprocessed later.
func (s *Service) Ingest(ctx context.Context, systemType, name string, data []byte) (*interfaces.IngestResult, error) {
	profile, err := s.registry.Resolve(systemType)
	if err != nil {
		return nil, err
	}
	engine := s.engines[systemType]

	docParser, err := parser.Select(name, s.parsers...)
	if err != nil {
		return nil, err
	}
	segments, err := docParser.Parse(ctx, data)
	if err != nil {
		return nil, err
	}

	sourceID := common.NewUploadID()
	if s.uploads != nil {
		encoded := base64.StdEncoding.EncodeToString(data)
		if err := s.uploads.Set(ctx, sourceID, encoded, name); err != nil {
			s.logger.Warn().Err(err).Str("source_id", sourceID).Msg("Failed to retain upload")
		}
	}

	doc := models.Document{
		RawText:  strings.Join(segments, "\n"),
		SourceID: sourceID,
		Title:    name,
	}
	chunkCount, err := engine.Ingest(ctx, doc)
	if err != nil {
		return nil, err
	}

	if s.statuses != nil {
		status := &models.IngestStatus{
			ProfileKey: profile.Key,
			SourceID:   sourceID,
			ChunkCount: chunkCount,
			IngestedAt: time.Now().UTC(),
		}
		if err := s.statuses.Save(ctx, status); err != nil {
			s.logger.Warn().Err(err).Str("profile", profile.Key).Msg("Failed to record ingest status")
		}
	}

	s.logger.Info().
		Str("system_type", systemType).
		Str("name", name).
		Str("source_id", sourceID).
		Int("segments", len(segments)).
		Int("chunks", chunkCount).
		Msg("Document ingested")

	return &interfaces.IngestResult{
		ChunkCount: chunkCount,
		Segments:   len(segments),
	}, nil
}

// RetrieveOnly returns passage texts without running generation.
func (s *Service) RetrieveOnly(ctx context.Context, systemType, question string, k int) ([]string, error) {
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("question must not be empty: %w", models.ErrInvalidRequest)
	}

	if _, err := s.registry.Resolve(systemType); err != nil {
		return nil, err
	}

	passages, err := s.engines[systemType].Retrieve(ctx, question, k)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(passages))
	for i, passage := range passages {
		texts[i] = passage.Text
	}
	return texts, nil
}

// ListProfiles returns registered profiles in registration order.
func (s *Service) ListProfiles() []interfaces.ProfileInfo {
	return s.registry.List()
}

// Status reports readiness and last ingest metadata per profile.
func (s *Service) Status(ctx context.Context) []interfaces.ProfileStatus {
	keys := s.registry.Keys()
	statuses := make([]interfaces.ProfileStatus, 0, len(keys))

	for _, key := range keys {
		engine := s.engines[key]
		status := interfaces.ProfileStatus{
			Key:        key,
			CorpusMode: engine.Profile().CorpusMode,
			Ready:      engine.Ready(),
		}
		if s.statuses != nil {
			if last, err := s.statuses.Get(ctx, key); err == nil {
				status.LastIngest = last
			}
		}
		statuses = append(statuses, status)
	}

	return statuses
}
