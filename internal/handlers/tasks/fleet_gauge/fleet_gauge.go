package fleet_gauge

import (
	"context"
	"time"

	"logistic/internal/pkg/metrics"
	"logistic/pkg/logger"
)

type Service interface {
	FleetSize(ctx context.Context) (int, error)
}

// FleetGauge периодически обновляет метрику числа водителей онлайн.
// Записи позиций истекают по TTL сами, задача только снимает показание.
type FleetGauge struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewFleetGauge(log logger.Logger, service Service, interval time.Duration) *FleetGauge {
	return &FleetGauge{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (f *FleetGauge) TTL() time.Duration {
	return f.interval
}

func (f *FleetGauge) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, f.interval)
	defer cancel()

	size, err := f.service.FleetSize(ctxWithTimeout)
	if err != nil {
		return err
	}

	metrics.FleetDriversOnline.Set(float64(size))

	f.log.With(
		logger.NewField("drivers_online", size),
	).Info("fleet gauge")

	return nil
}

func (f *FleetGauge) Info() string {
	return "fleet gauge"
}
