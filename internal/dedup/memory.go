package dedup

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// sweepProbability - доля запросов на запись, запускающих полную уборку.
// Вероятностный триггер вместо фонового таймера: память ограничена
// в худшем случае интервалом между уборками.
const sweepProbability = 0.01

// Record - результат ранее обработанной отправки
type Record struct {
	Reference  string    `json:"reference"`
	CapturedAt time.Time `json:"captured_at"`
}

// MemoryStore хранит записи дедупликации в памяти процесса.
// Записи не разделяются между инстансами - это осознанное ограничение
// масштабирования; для нескольких инстансов используйте RedisStore.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Record
	window  time.Duration

	// Инжектируемые часы и бросок для уборки, чтобы стор был тестируемым
	now  func() time.Time
	roll func() float64
}

// NewMemoryStore создает новый стор с заданным скользящим окном
func NewMemoryStore(window time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Record),
		window:  window,
		now:     time.Now,
		roll:    rand.Float64,
	}
}

// Lookup возвращает живую запись для отпечатка или nil при промахе.
// Просроченная запись считается отсутствующей (ленивое истечение),
// физически её убирает уборка.
func (s *MemoryStore) Lookup(_ context.Context, fingerprint string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.entries[fingerprint]
	if !ok {
		return nil, nil
	}
	if s.now().Sub(rec.CapturedAt) > s.window {
		return nil, nil
	}
	return &rec, nil
}

// Store записывает результат успешной отправки и с малой вероятностью
// запускает уборку просроченных записей
func (s *MemoryStore) Store(_ context.Context, fingerprint, reference string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[fingerprint] = Record{
		Reference:  reference,
		CapturedAt: s.now(),
	}

	if s.roll() < sweepProbability {
		s.sweep()
	}
	return nil
}

// sweep удаляет все записи старше окна; вызывается под мьютексом,
// поэтому записи, созданные после начала обхода, не затрагиваются
func (s *MemoryStore) sweep() {
	cutoff := s.now().Add(-s.window)
	for fp, rec := range s.entries {
		if rec.CapturedAt.Before(cutoff) {
			delete(s.entries, fp)
		}
	}
}

// Len возвращает текущее число записей (для тестов и health-статистики)
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
