package audit

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// Recorder is the narrow interface mutating services use to leave a trail.
// Recording is best effort: a failed audit write never fails the mutation.
type Recorder interface {
	Record(ctx context.Context, adminID, action, tableName, recordID string, oldValues, newValues any)
}

type Service interface {
	Recorder
	GetByID(ctx context.Context, id string) (*Entry, error)
	List(ctx context.Context, filter Filter) ([]*Entry, int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Record(ctx context.Context, adminID, action, tableName, recordID string, oldValues, newValues any) {
	e := &Entry{
		AdminID:   adminID,
		Action:    action,
		TableName: tableName,
		RecordID:  recordID,
		OldValues: marshalValues(oldValues),
		NewValues: marshalValues(newValues),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		log.Warn().Err(err).
			Str("action", action).
			Str("table", tableName).
			Str("record_id", recordID).
			Msg("failed to record audit entry")
	}
}

func (s *service) GetByID(ctx context.Context, id string) (*Entry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Entry, int, error) {
	return s.repo.List(ctx, filter)
}

func marshalValues(v any) []byte {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Warn().Err(err).Msg("failed to marshal audit values")
		return nil
	}
	return b
}
