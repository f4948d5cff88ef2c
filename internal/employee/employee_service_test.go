package employee_test

import (
	"context"
	"errors"
	"io/fs"
	"sync"
	"testing"

	"go-payroll/internal/credential"
	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	employeeMock "go-payroll/internal/employee/mock"
	"go-payroll/internal/shared/audit"
	validationerrors "go-payroll/internal/validation/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingAudit struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (r *recordingAudit) Log(_ context.Context, e audit.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

type serviceDeps struct {
	service employee.Service
	repo    *employeeMock.MockRepository
	hasher  credential.Hasher
	audit   *recordingAudit
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	hasher, err := credential.NewHasher(credential.AlgorithmSHA256)
	require.NoError(t, err)

	repo := employeeMock.NewMockRepository(ctrl)
	rec := &recordingAudit{}

	return &serviceDeps{
		service: employee.NewService(repo, hasher, rec),
		repo:    repo,
		hasher:  hasher,
		audit:   rec,
	}
}

func validRequest() employee.RegisterEmployeeRequest {
	return employee.RegisterEmployeeRequest{
		EmpID:    " EMP-1234 ",
		Name:     "Asha Rao",
		Email:    "asha@corp.in",
		Phone:    "98765 43210",
		Username: "asha",
		Password: "Secret@123",
	}
}

func TestEmployeeService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a sanitized registration with a digested password", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, reg employee.Registration) error {
				assert.Equal(t, "EMP-1234", reg.Employee.EmpID())
				assert.Equal(t, "9876543210", reg.Employee.Phone())
				assert.Equal(t, "asha", reg.Account.Username())
				assert.Equal(t, deps.hasher.Digest("Secret@123"), reg.Account.PasswordDigest())
				assert.NotContains(t, reg.Account.String(), "Secret@123")
				return nil
			})

		resp, err := deps.service.Register(ctx, validRequest())

		require.NoError(t, err)
		assert.Equal(t, "EMP-1234", resp.EmpID)
		assert.Contains(t, resp.Summary, "Username    : asha")
		require.Len(t, deps.audit.entries, 1)
		assert.Equal(t, audit.ActionEmployeeRegister, deps.audit.entries[0].Action)
	})

	t.Run("stops at the first invalid field without persisting", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := validRequest()
		req.Email = "not-an-email"
		req.Phone = "123"

		_, err := deps.service.Register(ctx, req)

		assert.ErrorIs(t, err, validationerrors.ErrEmailInvalid)
		assert.ErrorIs(t, err, validationerrors.ErrValidation)
		assert.Empty(t, deps.audit.entries)
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := validRequest()
		req.Password = "secret"

		_, err := deps.service.Register(ctx, req)

		assert.ErrorIs(t, err, validationerrors.ErrPasswordWeak)
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := validRequest()
		req.Name = "   "

		_, err := deps.service.Register(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrMissingName)
	})

	t.Run("surfaces a write failure as an io error", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().Append(gomock.Any(), gomock.Any()).
			Return(employeeerrors.ErrPersistFailed.WithCause(fs.ErrPermission))
		deps.repo.EXPECT().Location().Return("employee_data.txt")

		_, err := deps.service.Register(ctx, validRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrPersistFailed)
		assert.ErrorIs(t, err, fs.ErrPermission)
		assert.Empty(t, deps.audit.entries)
	})
}

func TestEmployeeService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("maps persisted records", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().ReadAll(gomock.Any()).Return([]employee.Record{
			{EmpID: "EMP-0001", Name: "A", Email: "a@x.in", Phone: "9000000000", Username: "a"},
		}, nil)

		resp, err := deps.service.List(ctx)

		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "EMP-0001", resp[0].EmpID)
	})

	t.Run("returns repository errors", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().ReadAll(gomock.Any()).Return(nil, errors.New("boom"))

		_, err := deps.service.List(ctx)

		assert.EqualError(t, err, "boom")
	})
}
