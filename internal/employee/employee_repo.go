package employee

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"sync"

	employeeerrors "go-payroll/internal/employee/errors"
)

const recordFields = 5

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Append(ctx context.Context, reg Registration) error
	ReadAll(ctx context.Context) ([]Record, error)
	Location() string
}

type fileRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileRepository persists registrations as append-only lines of
// empId,name,email,phone,username.
func NewFileRepository(path string) Repository {
	return &fileRepository{path: path}
}

func (r *fileRepository) Location() string { return r.path }

func (r *fileRepository) Append(ctx context.Context, reg Registration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return employeeerrors.ErrPersistFailed.WithCause(err)
	}

	w := csv.NewWriter(f)
	werr := w.Write([]string{
		reg.Employee.EmpID(),
		reg.Employee.Name(),
		reg.Employee.Email(),
		reg.Employee.Phone(),
		reg.Account.Username(),
	})
	if werr == nil {
		w.Flush()
		werr = w.Error()
	}

	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return employeeerrors.ErrPersistFailed.WithCause(werr)
	}

	return nil
}

func (r *fileRepository) ReadAll(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, employeeerrors.ErrReadFailed.WithCause(err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = recordFields

	records := make([]Record, 0)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, employeeerrors.ErrCorruptRecord.WithCause(err)
		}

		records = append(records, Record{
			EmpID:    row[0],
			Name:     row[1],
			Email:    row[2],
			Phone:    row[3],
			Username: row[4],
		})
	}

	return records, nil
}
