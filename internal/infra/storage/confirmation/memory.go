package confirmation

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// MemoryRepository хранилище подтверждений в памяти процесса
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]domain.ConfirmationRecord
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records: make(map[string]domain.ConfirmationRecord),
	}
}

// Create сохраняет подтверждение. Номер должен быть уникален
func (r *MemoryRepository) Create(ctx context.Context, rec domain.ConfirmationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[rec.Number()]; exists {
		return ErrDuplicateNumber
	}
	r.records[rec.Number()] = rec
	return nil
}

// GetByNumber получает подтверждение по номеру
func (r *MemoryRepository) GetByNumber(ctx context.Context, number string) (domain.ConfirmationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[number]
	if !ok {
		return domain.ConfirmationRecord{}, ErrConfirmationNotFound
	}
	return rec, nil
}

// Exists проверяет, занят ли номер
func (r *MemoryRepository) Exists(ctx context.Context, number string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.records[number]
	return ok, nil
}
