package dashboard

import (
	"context"

	dashboarderrors "go-payroll/internal/dashboard/errors"
	"go-payroll/internal/employee"
	"go-payroll/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	Render(ctx context.Context, req RenderRequest) (ViewResponse, error)
}

type service struct {
	logger *zap.Logger
}

func NewService(logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{logger: l}
}

// Render falls back to DemoPayslips when the request carries none.
func (s *service) Render(ctx context.Context, req RenderRequest) (ViewResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	d, ok := Select(req.Role)
	if !ok {
		log.Warn("unknown dashboard role", zap.String("role", req.Role))
		return ViewResponse{}, dashboarderrors.ErrInvalidRole
	}

	payslips := req.Payslips
	if len(payslips) == 0 {
		payslips = DemoPayslips()
	}

	emp := employee.NewEmployee(req.EmpID, req.Name, "", "")
	v := d.Render(payslips, emp)

	log.Debug("dashboard rendered",
		zap.String("kind", string(v.Kind)),
		zap.Int("payslips", len(payslips)),
	)
	return toViewResponse(v), nil
}
