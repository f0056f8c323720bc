package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ScientiaCapital/sales-agent/ent"
	"github.com/ScientiaCapital/sales-agent/ent/crmsynclog"
	"github.com/ScientiaCapital/sales-agent/pkg/models"
)

// SyncLogService records the lifecycle of CRM sync runs.
type SyncLogService struct {
	client *ent.Client
}

// NewSyncLogService creates a new SyncLogService
func NewSyncLogService(client *ent.Client) *SyncLogService {
	return &SyncLogService{client: client}
}

// CreateSyncLog opens a run record in the running state.
func (s *SyncLogService) CreateSyncLog(ctx context.Context, req models.CreateSyncLogRequest) (*ent.CRMSyncLog, error) {
	if req.SyncID == "" {
		return nil, NewValidationError("sync_id", "required")
	}
	if req.Platform == "" {
		return nil, NewValidationError("platform", "required")
	}
	switch req.Direction {
	case "import", "export", "bidirectional":
	default:
		return nil, NewValidationError("direction", "invalid: must be import, export, or bidirectional")
	}

	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	log, err := s.client.CRMSyncLog.Create().
		SetID(req.SyncID).
		SetPlatform(req.Platform).
		SetDirection(crmsynclog.Direction(req.Direction)).
		SetStatus(crmsynclog.StatusRunning).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create sync log: %w", err)
	}
	return log, nil
}

// UpdateCounts replaces the progress tally for a running sync.
func (s *SyncLogService) UpdateCounts(ctx context.Context, syncID string, counts models.SyncRunCounts) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := s.client.CRMSyncLog.UpdateOneID(syncID).
		SetProcessed(counts.Processed).
		SetCreated(counts.Created).
		SetUpdated(counts.Updated).
		SetFailed(counts.Failed)
	if len(counts.Errors) > 0 {
		update = update.SetErrors(counts.Errors)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update sync counts: %w", err)
	}
	return nil
}

// Finalize closes a run with a terminal status and the final tally.
func (s *SyncLogService) Finalize(ctx context.Context, syncID, status string, counts models.SyncRunCounts) error {
	switch status {
	case "completed", "failed", "rate_limited":
	default:
		return NewValidationError("status", "invalid: must be completed, failed, or rate_limited")
	}

	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := s.client.CRMSyncLog.UpdateOneID(syncID).
		SetStatus(crmsynclog.Status(status)).
		SetProcessed(counts.Processed).
		SetCreated(counts.Created).
		SetUpdated(counts.Updated).
		SetFailed(counts.Failed).
		SetCompletedAt(time.Now())
	if len(counts.Errors) > 0 {
		update = update.SetErrors(counts.Errors)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finalize sync log: %w", err)
	}
	return nil
}

// GetSyncStatus returns the externally visible state of one run.
func (s *SyncLogService) GetSyncStatus(ctx context.Context, syncID string) (*models.SyncStatus, error) {
	log, err := s.client.CRMSyncLog.Get(ctx, syncID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sync log: %w", err)
	}
	return syncStatusFromEnt(log), nil
}

// History returns recent runs for a platform, newest first.
func (s *SyncLogService) History(ctx context.Context, platform string, limit int) ([]*models.SyncStatus, error) {
	if limit <= 0 {
		limit = 20
	}

	query := s.client.CRMSyncLog.Query().
		Order(ent.Desc(crmsynclog.FieldStartedAt)).
		Limit(limit)
	if platform != "" {
		query = query.Where(crmsynclog.PlatformEQ(platform))
	}

	logs, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync history: %w", err)
	}

	out := make([]*models.SyncStatus, 0, len(logs))
	for _, log := range logs {
		out = append(out, syncStatusFromEnt(log))
	}
	return out, nil
}

// LatestRun returns the most recent run for a platform, or ErrNotFound.
func (s *SyncLogService) LatestRun(ctx context.Context, platform string) (*models.SyncStatus, error) {
	log, err := s.client.CRMSyncLog.Query().
		Where(crmsynclog.PlatformEQ(platform)).
		Order(ent.Desc(crmsynclog.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest sync run: %w", err)
	}
	return syncStatusFromEnt(log), nil
}

// HasRunningSync reports whether a run for the platform is still open.
// The scheduler uses this to skip overlapping runs.
func (s *SyncLogService) HasRunningSync(ctx context.Context, platform string) (bool, error) {
	n, err := s.client.CRMSyncLog.Query().
		Where(
			crmsynclog.PlatformEQ(platform),
			crmsynclog.StatusEQ(crmsynclog.StatusRunning),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count running syncs: %w", err)
	}
	return n > 0, nil
}

func syncStatusFromEnt(log *ent.CRMSyncLog) *models.SyncStatus {
	return &models.SyncStatus{
		SyncID:    log.ID,
		Platform:  log.Platform,
		Direction: string(log.Direction),
		Status:    string(log.Status),
		Counts: models.SyncRunCounts{
			Processed: log.Processed,
			Created:   log.Created,
			Updated:   log.Updated,
			Failed:    log.Failed,
			Errors:    log.Errors,
		},
		StartedAt:   log.StartedAt,
		CompletedAt: log.CompletedAt,
	}
}
