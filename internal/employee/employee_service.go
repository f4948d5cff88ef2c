package employee

import (
	"context"
	"strings"

	"go-payroll/internal/credential"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/audit"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const listFlightKey = "employees:list"

type Service interface {
	Register(ctx context.Context, req RegisterEmployeeRequest) (RegistrationResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
}

type service struct {
	repo   Repository
	hasher credential.Hasher
	audit  audit.Logger
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, hasher credential.Hasher, auditLogger audit.Logger, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		hasher: hasher,
		audit:  audit.OrNop(auditLogger),
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Register(ctx context.Context, req RegisterEmployeeRequest) (RegistrationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("register employee requested",
		zap.String("request_id", rid),
		zap.String("emp_id", req.EmpID),
	)

	empID, err := validation.ValidateEmployeeID(req.EmpID)
	if err != nil {
		log.Warn("register employee invalid emp_id", zap.String("emp_id", req.EmpID))
		return RegistrationResponse{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return RegistrationResponse{}, employeeerrors.ErrMissingName
	}

	email, err := validation.ValidateEmail(req.Email)
	if err != nil {
		log.Warn("register employee invalid email", zap.String("emp_id", empID))
		return RegistrationResponse{}, err
	}

	phone, err := validation.ValidatePhone(req.Phone)
	if err != nil {
		log.Warn("register employee invalid phone", zap.String("emp_id", empID))
		return RegistrationResponse{}, err
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return RegistrationResponse{}, employeeerrors.ErrMissingUsername
	}

	password, err := validation.ValidatePassword(req.Password)
	if err != nil {
		log.Warn("register employee weak password", zap.String("emp_id", empID))
		return RegistrationResponse{}, err
	}

	reg := Registration{
		Employee: NewEmployee(empID, name, email, phone),
		Account:  NewUserAccount(username, s.hasher.Digest(password)),
	}

	if err := s.repo.Append(ctx, reg); err != nil {
		log.Error("register employee persist failed",
			zap.String("emp_id", empID),
			zap.String("path", s.repo.Location()),
			zap.Error(err),
		)
		return RegistrationResponse{}, err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:  audit.ActionEmployeeRegister,
		Message: "employee registered",
		Meta: map[string]any{
			"emp_id":   empID,
			"username": username,
		},
	})

	log.Info("register employee success",
		zap.String("request_id", rid),
		zap.String("emp_id", empID),
	)

	return toRegistrationResponse(reg), nil
}

// List returns every persisted registration. Concurrent callers share a
// single read of the log.
func (s *service) List(ctx context.Context) ([]EmployeeResponse, error) {
	v, err, shared := s.sf.Do(listFlightKey, func() (any, error) {
		return s.repo.ReadAll(ctx)
	})
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, err
	}

	records := v.([]Record)
	s.logger.Debug("list employees", zap.Int("count", len(records)), zap.Bool("shared", shared))

	resp := make([]EmployeeResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, toEmployeeResponse(r))
	}
	return resp, nil
}
