package domain

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
)

type Employee struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	DOB      string `json:"dob"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	ShowJSON bool   `json:"showJSON"`
}

// Mode marks whether a draft is meant to create a new record or replace an
// existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Draft is the uncommitted form state for one employee. It never carries a
// ShowJSON value; that belongs to the committed record.
type Draft struct {
	Mode     Mode
	ID       string // target record id, only meaningful when Mode == ModeEdit
	Name     string
	DOB      string
	Email    string
	Password string
	Phone    string
}

// FieldErrors maps a field name to its validation message. An empty map
// means the draft is acceptable for commit.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "no validation errors"
	}
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, fe[f]))
	}
	return strings.Join(parts, "; ")
}

// Confirmer asks the user to approve a destructive operation before the
// store executes it.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a plain function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

type EmployeeRepo interface {
	Load(ctx context.Context) ([]Employee, error)
	Save(ctx context.Context, employees []Employee) error
	Clear(ctx context.Context) error
	Close() error
}

type EmployeeUseCase interface {
	LoadUC(ctx context.Context) error
	AllUC() []Employee
	CreateUC(ctx context.Context, draft Draft) (*Employee, error)
	UpdateUC(ctx context.Context, id string, draft Draft) error
	DeleteUC(ctx context.Context, id string) error
	ToggleDisplayUC(ctx context.Context, id string) error
	ClearAllUC(ctx context.Context) error
	ExportUC(ctx context.Context, w io.Writer) error
}
