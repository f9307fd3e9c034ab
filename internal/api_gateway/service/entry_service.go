package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cashflow-service/internal/domain/entry"
	"github.com/cashflow-service/internal/platform/messaging/producers"
)

// EntryServiceImpl implements the EntryService interface
type EntryServiceImpl struct {
	entryRepo entry.Repository
	producer  producers.MessagePublisher
	logger    *slog.Logger
}

// NewEntryService creates a new manual cash entry service
func NewEntryService(logger *slog.Logger, entryRepo entry.Repository, producer producers.MessagePublisher) EntryService {
	return &EntryServiceImpl{
		entryRepo: entryRepo,
		producer:  producer,
		logger:    logger,
	}
}

// CreateEntry validates and persists a new manual cash entry, then publishes
// an audit event. A publish failure is logged but never fails the request;
// the store is the source of truth and events are advisory.
func (s *EntryServiceImpl) CreateEntry(ctx context.Context, params CreateEntryParams) (*entry.ManualCashEntry, error) {
	e, err := entry.NewManualCashEntry(
		params.EntryDate,
		params.Amount,
		params.Type,
		params.Description,
		params.ProjectID,
		params.CostCenterID,
		params.DocumentReferences,
	)
	if err != nil {
		return nil, err
	}

	if err := s.entryRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	s.logger.Info("Manual cash entry created",
		"entry_id", e.ID.String(),
		"entry_type", string(e.Type),
		"amount", e.Amount.String(),
	)

	s.publishEvent(ctx, producers.EntryEventCreated, e.ID)
	return e, nil
}

// GetEntryByID retrieves a manual cash entry, returns ErrEntryNotFound if missing
func (s *EntryServiceImpl) GetEntryByID(ctx context.Context, id uuid.UUID) (*entry.ManualCashEntry, error) {
	return s.entryRepo.GetByID(ctx, id)
}

// DeleteEntry removes a manual cash entry, returning ErrEntryNotFound when
// nothing is stored under the given ID
func (s *EntryServiceImpl) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	exists, err := s.entryRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return entry.ErrEntryNotFound{ID: id}
	}

	if err := s.entryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Manual cash entry deleted", "entry_id", id.String())

	s.publishEvent(ctx, producers.EntryEventDeleted, id)
	return nil
}

func (s *EntryServiceImpl) publishEvent(ctx context.Context, action string, entryID uuid.UUID) {
	event := &producers.EntryEvent{
		Action:     action,
		EntryID:    entryID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.producer.Publish(ctx, entryID.String(), event); err != nil {
		s.logger.Error("Failed to publish entry audit event",
			"entry_id", entryID.String(),
			"action", action,
			"error", err,
		)
	}
}
