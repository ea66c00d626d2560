package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"employeeform/domain"
	"employeeform/services/employee/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type confirmStub struct {
	answer bool
	asked  []string
}

func (c *confirmStub) Confirm(ctx context.Context, prompt string) (bool, error) {
	c.asked = append(c.asked, prompt)
	return c.answer, nil
}

func setupUC(t *testing.T) (domain.EmployeeUseCase, domain.EmployeeRepo, *confirmStub) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	confirm := &confirmStub{answer: true}
	uc := NewEmployeeUseCase(repo, confirm, time.Second)
	require.NoError(t, uc.LoadUC(context.Background()))
	return uc, repo, confirm
}

func validDraft(name string) domain.Draft {
	return domain.Draft{
		Name:     name,
		DOB:      "1990-01-01",
		Email:    "jane@x.com",
		Password: "secret1",
		Phone:    "1234567890",
	}
}

func TestCreatePrependsRecord(t *testing.T) {
	uc, _, _ := setupUC(t)
	ctx := context.Background()

	first, err := uc.CreateUC(ctx, validDraft("First Person"))
	require.NoError(t, err)
	second, err := uc.CreateUC(ctx, validDraft("Second Person"))
	require.NoError(t, err)

	all := uc.AllUC()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, all[0].ShowJSON)

	_, err = uuid.Parse(second.ID)
	assert.NoError(t, err)
}

func TestCreateRejectsInvalidDraft(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()

	emp, err := uc.CreateUC(ctx, domain.Draft{Name: "x"})
	require.Error(t, err)
	assert.Nil(t, emp)

	fieldErrs, ok := err.(domain.FieldErrors)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "name")

	// Neither the collection nor storage was touched.
	assert.Empty(t, uc.AllUC())
	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestUpdatePreservesOrderAndShowJSON(t *testing.T) {
	uc, _, _ := setupUC(t)
	ctx := context.Background()

	for _, name := range []string{"Person One", "Person Two", "Person Three"} {
		_, err := uc.CreateUC(ctx, validDraft(name))
		require.NoError(t, err)
	}

	before := uc.AllUC()
	target := before[1]
	require.NoError(t, uc.ToggleDisplayUC(ctx, target.ID))

	updated := validDraft("Renamed Person")
	updated.Mode = domain.ModeEdit
	updated.ID = target.ID
	require.NoError(t, uc.UpdateUC(ctx, target.ID, updated))

	after := uc.AllUC()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
	}
	assert.Equal(t, "Renamed Person", after[1].Name)
	assert.True(t, after[1].ShowJSON)
}

func TestUpdateMissingIDIsNoOp(t *testing.T) {
	uc, _, _ := setupUC(t)
	ctx := context.Background()

	_, err := uc.CreateUC(ctx, validDraft("Only Person"))
	require.NoError(t, err)
	before := uc.AllUC()

	require.NoError(t, uc.UpdateUC(ctx, "no-such-id", validDraft("Ghost")))
	assert.Equal(t, before, uc.AllUC())
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	uc, _, confirm := setupUC(t)
	ctx := context.Background()

	emp, err := uc.CreateUC(ctx, validDraft("Doomed Person"))
	require.NoError(t, err)

	confirm.answer = false
	require.NoError(t, uc.DeleteUC(ctx, emp.ID))
	assert.Len(t, uc.AllUC(), 1)
	assert.NotEmpty(t, confirm.asked)

	confirm.answer = true
	require.NoError(t, uc.DeleteUC(ctx, emp.ID))
	assert.Empty(t, uc.AllUC())
}

func TestDeleteSurvivesReload(t *testing.T) {
	uc, repo, confirm := setupUC(t)
	ctx := context.Background()

	emp, err := uc.CreateUC(ctx, validDraft("Doomed Person"))
	require.NoError(t, err)
	keep, err := uc.CreateUC(ctx, validDraft("Kept Person"))
	require.NoError(t, err)

	require.NoError(t, uc.DeleteUC(ctx, emp.ID))

	reloaded := NewEmployeeUseCase(repo, confirm, time.Second)
	require.NoError(t, reloaded.LoadUC(ctx))
	all := reloaded.AllUC()
	require.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ID)
}

func TestDeleteMissingIDIsNoOp(t *testing.T) {
	uc, _, _ := setupUC(t)
	ctx := context.Background()

	_, err := uc.CreateUC(ctx, validDraft("Only Person"))
	require.NoError(t, err)

	require.NoError(t, uc.DeleteUC(ctx, "no-such-id"))
	assert.Len(t, uc.AllUC(), 1)
}

func TestToggleMissingIDIsNoOp(t *testing.T) {
	uc, _, _ := setupUC(t)

	require.NoError(t, uc.ToggleDisplayUC(context.Background(), "no-such-id"))
	assert.Empty(t, uc.AllUC())
}

func TestClearAllEmptiesStoreAndStorage(t *testing.T) {
	uc, repo, confirm := setupUC(t)
	ctx := context.Background()

	_, err := uc.CreateUC(ctx, validDraft("Person One"))
	require.NoError(t, err)
	_, err = uc.CreateUC(ctx, validDraft("Person Two"))
	require.NoError(t, err)

	require.NoError(t, uc.ClearAllUC(ctx))
	assert.Empty(t, uc.AllUC())

	reloaded := NewEmployeeUseCase(repo, confirm, time.Second)
	require.NoError(t, reloaded.LoadUC(ctx))
	assert.Empty(t, reloaded.AllUC())
}

func TestExportProducesPrettyJSON(t *testing.T) {
	uc, _, _ := setupUC(t)
	ctx := context.Background()

	created, err := uc.CreateUC(ctx, validDraft("Jane Doe"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, uc.ExportUC(ctx, &buf))

	var exported []domain.Employee
	require.NoError(t, json.Unmarshal(buf.Bytes(), &exported))
	require.Len(t, exported, 1)
	assert.Equal(t, created.ID, exported[0].ID)
	assert.Equal(t, "Jane Doe", exported[0].Name)
	assert.Equal(t, "secret1", exported[0].Password)
	assert.False(t, exported[0].ShowJSON)

	// 2-space indentation, not a flat dump.
	assert.Contains(t, buf.String(), "\n  {")
}

func TestExportEmptyCollection(t *testing.T) {
	uc, _, _ := setupUC(t)

	var buf bytes.Buffer
	require.NoError(t, uc.ExportUC(context.Background(), &buf))

	var exported []domain.Employee
	require.NoError(t, json.Unmarshal(buf.Bytes(), &exported))
	assert.Empty(t, exported)
}
