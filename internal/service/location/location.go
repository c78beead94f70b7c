package location

import (
	"context"
	"fmt"
	"strings"
	"time"

	"logistic/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// PublishLocation публикует текущую позицию водителя. Last-writer-wins:
// новая публикация перезаписывает предыдущую, истории нет.
func (s *Service) PublishLocation(ctx context.Context, sample entities.DriverLocation) error {
	if strings.TrimSpace(sample.DriverID) == "" {
		return ErrInvalidDriverID
	}
	if sample.Latitude < -90 || sample.Latitude > 90 ||
		sample.Longitude < -180 || sample.Longitude > 180 {
		return ErrInvalidCoordinates
	}

	if sample.Timestamp.IsZero() {
		sample.Timestamp = time.Now().UTC()
	}

	if err := s.repository.Publish(ctx, sample); err != nil {
		return fmt.Errorf("publish location: %w", err)
	}
	return nil
}

// ListLocations возвращает последнюю известную позицию каждого публикующегося водителя.
func (s *Service) ListLocations(ctx context.Context) ([]entities.DriverLocation, error) {
	samples, err := s.repository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return samples, nil
}

// GetDriverLocation возвращает последнюю известную позицию водителя.
// Возвращает ErrLocationNotFound, если водитель не публиковался или запись истекла.
func (s *Service) GetDriverLocation(ctx context.Context, driverID string) (*entities.DriverLocation, error) {
	if strings.TrimSpace(driverID) == "" {
		return nil, ErrInvalidDriverID
	}

	sample, err := s.repository.GetByDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("get driver location: %w", err)
	}
	if sample == nil {
		return nil, ErrLocationNotFound
	}
	return sample, nil
}

// FleetSize возвращает число водителей с актуальной позицией, для метрики.
func (s *Service) FleetSize(ctx context.Context) (int, error) {
	samples, err := s.repository.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("fleet size: %w", err)
	}
	return len(samples), nil
}
