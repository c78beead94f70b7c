package order_number

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const suffixRange = 1000

// OrderNumberFactory выдаёт человекочитаемый номер заказа вида
// ГГГГММДД-NNN. Номер служит только для отображения, уникальность записи
// обеспечивает id, поэтому случайного суффикса достаточно.
type OrderNumberFactory struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func New() *OrderNumberFactory {
	return &OrderNumberFactory{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (f *OrderNumberFactory) Next(baseTime time.Time) string {
	f.mu.Lock()
	suffix := f.rnd.Intn(suffixRange)
	f.mu.Unlock()

	return fmt.Sprintf("%s-%03d", baseTime.Format("20060102"), suffix)
}
