package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"employeeform/config"
	"employeeform/domain"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"
)

// fileRepository mirrors the committed collection into a single JSON file,
// the way the original kept it under one local-storage key.
type fileRepository struct {
	path string
	log  *logrus.Logger
}

func NewFileRepository(path string) domain.EmployeeRepo {
	return &fileRepository{
		path: path,
		log:  config.GetLogrusInstance(),
	}
}

// Load is fail-soft: a missing or malformed file yields an empty collection,
// never an error.
func (fr *fileRepository) Load(ctx context.Context) ([]domain.Employee, error) {
	data, err := os.ReadFile(fr.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fr.log.Warnf("could not read %s, starting empty: %v", fr.path, err)
		}
		return []domain.Employee{}, nil
	}

	var employees []domain.Employee
	if err := sonic.Unmarshal(data, &employees); err != nil {
		fr.log.Warnf("malformed data in %s, starting empty: %v", fr.path, err)
		return []domain.Employee{}, nil
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	return employees, nil
}

func (fr *fileRepository) Save(ctx context.Context, employees []domain.Employee) error {
	if employees == nil {
		employees = []domain.Employee{}
	}
	data, err := sonic.Marshal(employees)
	if err != nil {
		return fmt.Errorf("could not serialize employees: %w", err)
	}
	if err := os.WriteFile(fr.path, data, 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", fr.path, err)
	}
	return nil
}

// Clear removes the file outright, as opposed to saving an empty collection.
func (fr *fileRepository) Clear(ctx context.Context) error {
	if err := os.Remove(fr.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not remove %s: %w", fr.path, err)
	}
	return nil
}

func (fr *fileRepository) Close() error {
	return nil
}
