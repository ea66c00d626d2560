package repository

import (
	"context"
	"sync"

	"employeeform/domain"
)

// memoryRepository keeps the collection in process memory only. Used for
// ephemeral runs and tests; Load after restart always starts empty.
type memoryRepository struct {
	mu        sync.RWMutex
	stored    []domain.Employee
	hasRecord bool
}

func NewMemoryRepository() domain.EmployeeRepo {
	return &memoryRepository{}
}

func (mr *memoryRepository) Load(ctx context.Context) ([]domain.Employee, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	if !mr.hasRecord {
		return []domain.Employee{}, nil
	}
	out := make([]domain.Employee, len(mr.stored))
	copy(out, mr.stored)
	return out, nil
}

func (mr *memoryRepository) Save(ctx context.Context, employees []domain.Employee) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	mr.stored = make([]domain.Employee, len(employees))
	copy(mr.stored, employees)
	mr.hasRecord = true
	return nil
}

func (mr *memoryRepository) Clear(ctx context.Context) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	mr.stored = nil
	mr.hasRecord = false
	return nil
}

func (mr *memoryRepository) Close() error {
	return nil
}
