package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"casebridge/internal/fraudcase/models"
)

const recordKeyPrefix = "fraudcase:record:"

type recordJSON struct {
	ID          string  `json:"id"`
	Status      string  `json:"status"`
	Code        string  `json:"code"`
	Score       float64 `json:"score"`
	EntriesText string  `json:"entries_text"`
	CreatedAt   int64   `json:"created_at"` // Unix nano
}

// RedisStore persists records as JSON strings without expiry.
type RedisStore struct {
	client redis.Cmdable
}

func NewRedis(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

func recordKey(orderID string) string {
	return recordKeyPrefix + orderID
}

func (s *RedisStore) Save(ctx context.Context, record *models.CaseRecord) error {
	if record == nil {
		return errors.New("case record is required")
	}
	data, err := json.Marshal(recordJSON{
		ID:          record.ID,
		Status:      string(record.Status),
		Code:        record.Code,
		Score:       record.Score,
		EntriesText: record.EntriesText,
		CreatedAt:   record.CreatedAt.UnixNano(),
	})
	if err != nil {
		return fmt.Errorf("marshal case record: %w", err)
	}
	if err := s.client.Set(ctx, recordKey(record.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("save case record: %w", err)
	}
	return nil
}

func (s *RedisStore) FindByID(ctx context.Context, orderID string) (*models.CaseRecord, error) {
	data, err := s.client.Get(ctx, recordKey(orderID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, notFound(orderID)
		}
		return nil, fmt.Errorf("find case record: %w", err)
	}
	var j recordJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("decode case record: %w", err)
	}
	return &models.CaseRecord{
		ID:          j.ID,
		Status:      models.CaseStatus(j.Status),
		Code:        j.Code,
		Score:       j.Score,
		EntriesText: j.EntriesText,
		CreatedAt:   time.Unix(0, j.CreatedAt).UTC(),
	}, nil
}
