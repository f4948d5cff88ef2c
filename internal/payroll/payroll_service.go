package payroll

import (
	"context"
	"net/url"
	"path/filepath"
	"time"

	"go-payroll/internal/employee"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/clock"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/validation"

	"go.uber.org/zap"
)

const DownloadPath = "/api/v1/payslips/download"

type Service interface {
	Compute(ctx context.Context, req ComputePayslipRequest) (PayslipResponse, error)
	IssueLink(ctx context.Context, req ComputePayslipRequest) (LinkResponse, error)
	Download(ctx context.Context, link string, format Format) (DownloadResponse, error)
}

type service struct {
	calc     *Calculator
	download *DownloadService
	signer   *LinkSigner
	tokenTTL time.Duration
	clock    clock.Clock
	logger   *zap.Logger
}

// NewService wires the HTTP-facing payroll operations. signer may be nil,
// in which case link operations report ErrSigningUnavailable.
func NewService(
	calc *Calculator,
	download *DownloadService,
	signer *LinkSigner,
	tokenTTL time.Duration,
	clk clock.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		calc:     calc,
		download: download,
		signer:   signer,
		tokenTTL: tokenTTL,
		clock:    clock.OrReal(clk),
		logger:   l,
	}
}

func (s *service) compute(req ComputePayslipRequest) (Payslip, error) {
	empID, err := validation.ValidateEmployeeID(req.EmpID)
	if err != nil {
		return Payslip{}, err
	}

	emp := employee.NewEmployee(empID, req.Name, "", "")
	return s.calc.ComputePayslip(&emp, req.Month, req.Basic, req.HRA, req.DA, req.Allowances)
}

func (s *service) Compute(ctx context.Context, req ComputePayslipRequest) (PayslipResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("compute payslip requested", zap.String("emp_id", req.EmpID), zap.String("month", req.Month))

	p, err := s.compute(req)
	if err != nil {
		log.Warn("compute payslip rejected", zap.String("emp_id", req.EmpID), zap.Error(err))
		return PayslipResponse{}, err
	}

	return toPayslipResponse(p), nil
}

func (s *service) IssueLink(ctx context.Context, req ComputePayslipRequest) (LinkResponse, error) {
	if s.signer == nil {
		return LinkResponse{}, payrollerrors.ErrSigningUnavailable
	}

	p, err := s.compute(req)
	if err != nil {
		return LinkResponse{}, err
	}

	token := NewDownloadToken(s.clock.Now(), s.tokenTTL)
	link, err := s.signer.Issue(p, token)
	if err != nil {
		s.logger.Error("sign download link failed", zap.Error(err))
		return LinkResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("download link issued",
		zap.String("emp_id", p.EmpID()),
		zap.String("token_id", token.ID),
	)

	return LinkResponse{
		TokenID:     token.ID,
		Link:        link,
		ExpiresAt:   token.CreatedAt.Add(token.TTL),
		DownloadURL: DownloadPath + "?token=" + url.QueryEscape(link),
	}, nil
}

func (s *service) Download(ctx context.Context, link string, format Format) (DownloadResponse, error) {
	if s.signer == nil {
		return DownloadResponse{}, payrollerrors.ErrSigningUnavailable
	}

	p, token, err := s.signer.Open(link, s.clock.Now())
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("open download link failed", zap.Error(err))
		return DownloadResponse{}, err
	}

	res, err := s.download.Download(ctx, p, token)
	if err != nil {
		return DownloadResponse{}, err
	}

	path, contentType := res.TextPath, "text/plain; charset=utf-8"
	if format == FormatPDF {
		path, contentType = res.PDFPath, "application/pdf"
	}

	return DownloadResponse{
		FileName:    filepath.Base(path),
		ContentType: contentType,
		Content:     res.Copy.Statement(),
		TextPath:    res.TextPath,
		PDFPath:     res.PDFPath,
	}, nil
}
