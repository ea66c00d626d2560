package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"employeeform/config"
	"employeeform/domain"
	"employeeform/services/employee/validation"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type employeeUC struct {
	repo    domain.EmployeeRepo
	confirm domain.Confirmer
	TimeOut time.Duration
	log     *logrus.Logger

	mu        sync.Mutex
	employees []domain.Employee
}

func NewEmployeeUseCase(repo domain.EmployeeRepo, confirmer domain.Confirmer, timeOut time.Duration) domain.EmployeeUseCase {
	return &employeeUC{
		repo:    repo,
		confirm: confirmer,
		TimeOut: timeOut,
		log:     config.GetLogrusInstance(),
	}
}

// LoadUC hydrates the in-memory collection from storage. The repository is
// fail-soft on missing or malformed data, so an error here means the backend
// itself is unusable.
func (eUC *employeeUC) LoadUC(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, eUC.TimeOut)
	defer cancel()

	employees, err := eUC.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("could not load employees: %w", err)
	}

	eUC.mu.Lock()
	eUC.employees = employees
	eUC.mu.Unlock()
	return nil
}

func (eUC *employeeUC) AllUC() []domain.Employee {
	eUC.mu.Lock()
	defer eUC.mu.Unlock()

	out := make([]domain.Employee, len(eUC.employees))
	copy(out, eUC.employees)
	return out
}

// CreateUC commits a validated draft as a new record at the head of the
// collection. A draft that fails validation is rejected with the FieldErrors
// map and nothing is mutated or saved.
func (eUC *employeeUC) CreateUC(ctx context.Context, draft domain.Draft) (*domain.Employee, error) {
	if errs := validation.Draft(draft); len(errs) > 0 {
		return nil, errs
	}

	emp := domain.Employee{
		ID:       uuid.NewString(),
		Name:     draft.Name,
		DOB:      draft.DOB,
		Email:    draft.Email,
		Password: draft.Password,
		Phone:    draft.Phone,
		ShowJSON: false,
	}

	eUC.mu.Lock()
	eUC.employees = append([]domain.Employee{emp}, eUC.employees...)
	eUC.mu.Unlock()

	return &emp, eUC.persist(ctx)
}

// UpdateUC replaces the fields of the record matching id, keeping its
// position and its ShowJSON flag. An unknown id is a logged no-op.
func (eUC *employeeUC) UpdateUC(ctx context.Context, id string, draft domain.Draft) error {
	if errs := validation.Draft(draft); len(errs) > 0 {
		return errs
	}

	eUC.mu.Lock()
	found := false
	for i := range eUC.employees {
		if eUC.employees[i].ID != id {
			continue
		}
		eUC.employees[i].Name = draft.Name
		eUC.employees[i].DOB = draft.DOB
		eUC.employees[i].Email = draft.Email
		eUC.employees[i].Password = draft.Password
		eUC.employees[i].Phone = draft.Phone
		found = true
		break
	}
	eUC.mu.Unlock()

	if !found {
		eUC.log.Warnf("update skipped, no employee with id %s", id)
		return nil
	}
	return eUC.persist(ctx)
}

// DeleteUC removes the record matching id after the confirmer approves. A
// declined confirmation or unknown id leaves the collection untouched.
func (eUC *employeeUC) DeleteUC(ctx context.Context, id string) error {
	ok, err := eUC.confirm.Confirm(ctx, "Delete this employee?")
	if err != nil {
		return fmt.Errorf("could not confirm deletion: %w", err)
	}
	if !ok {
		return nil
	}

	eUC.mu.Lock()
	found := false
	for i := range eUC.employees {
		if eUC.employees[i].ID == id {
			eUC.employees = append(eUC.employees[:i], eUC.employees[i+1:]...)
			found = true
			break
		}
	}
	eUC.mu.Unlock()

	if !found {
		eUC.log.Warnf("delete skipped, no employee with id %s", id)
		return nil
	}
	return eUC.persist(ctx)
}

// ToggleDisplayUC flips the record's JSON display flag. UI state only, but
// it still triggers a save so the flag survives a restart.
func (eUC *employeeUC) ToggleDisplayUC(ctx context.Context, id string) error {
	eUC.mu.Lock()
	found := false
	for i := range eUC.employees {
		if eUC.employees[i].ID == id {
			eUC.employees[i].ShowJSON = !eUC.employees[i].ShowJSON
			found = true
			break
		}
	}
	eUC.mu.Unlock()

	if !found {
		eUC.log.Warnf("toggle skipped, no employee with id %s", id)
		return nil
	}
	return eUC.persist(ctx)
}

// ClearAllUC empties the collection and deletes the stored snapshot, which
// is not the same as storing an empty collection.
func (eUC *employeeUC) ClearAllUC(ctx context.Context) error {
	ok, err := eUC.confirm.Confirm(ctx, "Delete ALL employees?")
	if err != nil {
		return fmt.Errorf("could not confirm clear: %w", err)
	}
	if !ok {
		return nil
	}

	eUC.mu.Lock()
	eUC.employees = []domain.Employee{}
	eUC.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, eUC.TimeOut)
	defer cancel()
	if err := eUC.repo.Clear(ctx); err != nil {
		eUC.log.Errorf("could not clear storage: %v", err)
		return err
	}
	return nil
}

// ExportUC writes the full collection, passwords and display flags included,
// as pretty-printed JSON. Read-only with respect to store state.
func (eUC *employeeUC) ExportUC(ctx context.Context, w io.Writer) error {
	employees := eUC.AllUC()

	data, err := sonic.MarshalIndent(employees, "", "  ")
	if err != nil {
		return fmt.Errorf("could not serialize employees: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("could not write export: %w", err)
	}
	return nil
}

// persist mirrors the whole collection to storage. On failure the in-memory
// mutation stands: the caller sees the error and at most that one mutation
// is unsaved.
func (eUC *employeeUC) persist(ctx context.Context) error {
	employees := eUC.AllUC()

	ctx, cancel := context.WithTimeout(ctx, eUC.TimeOut)
	defer cancel()

	if err := eUC.repo.Save(ctx, employees); err != nil {
		eUC.log.Errorf("could not save employees: %v", err)
		return err
	}
	return nil
}
