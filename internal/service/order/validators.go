package order

import (
	"strings"

	"logistic/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderNew,
		entities.OrderInTransit,
		entities.OrderDelivered,
		entities.OrderCancelledByDriver:
		return true
	default:
		return false
	}
}

func isValidCargoType(cargoType entities.CargoType) bool {
	switch cargoType {
	case entities.CargoNormal, entities.CargoFragile, entities.CargoHazardous:
		return true
	default:
		return false
	}
}

// containsFold ищет подстроку без учёта регистра,
// как в мобильном поиске заказов по городам.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
