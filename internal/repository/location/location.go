package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"logistic/internal/entities"
	"logistic/internal/repository"
)

const keyPrefix = "driver_location:"

// scanBatchSize ограничивает размер одного SCAN, чтобы не блокировать redis.
const scanBatchSize = 100

type Repository struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Repository {
	return &Repository{
		client: client,
		ttl:    ttl,
	}
}

func (r *Repository) Publish(ctx context.Context, sample entities.DriverLocation) error {
	payload, err := json.Marshal(DriverLocationRD{
		DriverID:  sample.DriverID,
		Latitude:  sample.Latitude,
		Longitude: sample.Longitude,
		Timestamp: sample.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("unexpected location repository marshal error: %w", err)
	}

	if err = r.client.Set(ctx, keyPrefix+sample.DriverID, payload, r.ttl).Err(); err != nil {
		if repository.IsUnavailable(err) {
			return fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
		}
		return fmt.Errorf("unexpected location repository publish error: %w", err)
	}
	return nil
}

func (r *Repository) ListAll(ctx context.Context) ([]entities.DriverLocation, error) {
	keys, err := r.scanKeys(ctx)
	if err != nil {
		if repository.IsUnavailable(err) {
			return nil, fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected location repository scan error: %w", err)
	}
	if len(keys) == 0 {
		return []entities.DriverLocation{}, nil
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		if repository.IsUnavailable(err) {
			return nil, fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected location repository mget error: %w", err)
	}

	samples := make([]entities.DriverLocation, 0, len(values))
	for _, value := range values {
		// ключ мог истечь между SCAN и MGET
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var sample DriverLocationRD
		if err = json.Unmarshal([]byte(raw), &sample); err != nil {
			return nil, fmt.Errorf("unexpected location repository unmarshal error: %w", err)
		}

		samples = append(samples, entities.DriverLocation{
			DriverID:  sample.DriverID,
			Latitude:  sample.Latitude,
			Longitude: sample.Longitude,
			Timestamp: sample.Timestamp,
		})
	}

	return samples, nil
}

// GetByDriver возвращает позицию конкретного водителя, nil если записи нет.
func (r *Repository) GetByDriver(ctx context.Context, driverID string) (*entities.DriverLocation, error) {
	raw, err := r.client.Get(ctx, keyPrefix+driverID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		if repository.IsUnavailable(err) {
			return nil, fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected location repository get error: %w", err)
	}

	var sample DriverLocationRD
	if err = json.Unmarshal([]byte(raw), &sample); err != nil {
		return nil, fmt.Errorf("unexpected location repository unmarshal error: %w", err)
	}

	return &entities.DriverLocation{
		DriverID:  sample.DriverID,
		Latitude:  sample.Latitude,
		Longitude: sample.Longitude,
		Timestamp: sample.Timestamp,
	}, nil
}

func (r *Repository) scanKeys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0, scanBatchSize)

	var cursor uint64
	for {
		batch, next, err := r.client.Scan(ctx, cursor, keyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return nil, err
		}

		for _, key := range batch {
			if strings.HasPrefix(key, keyPrefix) {
				keys = append(keys, key)
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return keys, nil
}
