package payroll

import (
	"context"

	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/clock"
	"go-payroll/internal/shared/contextutil"

	"go.uber.org/zap"
)

type DownloadResult struct {
	Copy     Payslip
	TextPath string
	PDFPath  string
}

// DownloadService hands out copies of finalized payslips. The original is
// never touched.
type DownloadService struct {
	exporter *Exporter
	clock    clock.Clock
	logger   *zap.Logger
}

func NewDownloadService(exporter *Exporter, clk clock.Clock, logger ...*zap.Logger) *DownloadService {
	l := zap.L().Named("payroll.download")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.download")
	}
	return &DownloadService{exporter: exporter, clock: clock.OrReal(clk), logger: l}
}

func (d *DownloadService) Download(ctx context.Context, original Payslip, token DownloadToken) (DownloadResult, error) {
	log := contextutil.GetLogger(ctx, d.logger)

	copied := original.Clone()
	if !copied.Equal(original) {
		return DownloadResult{}, payrollerrors.ErrCopyMismatch
	}

	if token.IsExpired(d.clock.Now()) {
		log.Warn("download token expired",
			zap.String("token_id", token.ID),
			zap.String("emp_id", original.EmpID()),
		)
		return DownloadResult{}, payrollerrors.ErrDownloadExpired
	}

	res, err := d.exporter.Export(ctx, copied)
	if err != nil {
		log.Error("payslip export failed", zap.String("emp_id", original.EmpID()), zap.Error(err))
		return DownloadResult{}, err
	}

	log.Info("payslip downloaded",
		zap.String("emp_id", copied.EmpID()),
		zap.String("month", copied.Month()),
		zap.String("text_path", res.TextPath),
		zap.String("pdf_path", res.PDFPath),
	)

	return DownloadResult{Copy: copied, TextPath: res.TextPath, PDFPath: res.PDFPath}, nil
}
