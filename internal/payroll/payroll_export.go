package payroll

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/clock"

	"github.com/google/uuid"
)

type Format string

const (
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
)

func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case "", FormatText:
		return FormatText, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", payrollerrors.ErrInvalidFormat
	}
}

func (f Format) Extension() string {
	if f == FormatPDF {
		return ".pdf"
	}
	return ".txt"
}

// DownloadToken grants time-limited access to a payslip download.
type DownloadToken struct {
	ID        string
	CreatedAt time.Time
	TTL       time.Duration
}

func NewDownloadToken(now time.Time, ttl time.Duration) DownloadToken {
	return DownloadToken{ID: uuid.NewString(), CreatedAt: now, TTL: ttl}
}

func (t DownloadToken) IsExpired(now time.Time) bool {
	return now.Sub(t.CreatedAt) > t.TTL
}

//go:generate mockgen -source=payroll_export.go -destination=mock/payroll_export_mock.go -package=mock
type FileWriter interface {
	// Write stores text under name and returns where it went.
	Write(ctx context.Context, name, text string) (string, error)
}

type dirWriter struct {
	dir string
}

// NewDirWriter writes files into dir, creating it if needed.
func NewDirWriter(dir string) FileWriter {
	return &dirWriter{dir: dir}
}

func (w *dirWriter) Write(ctx context.Context, name, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

type ExportResult struct {
	TextPath string
	PDFPath  string
}

// Exporter writes a payslip statement twice, as .txt and as .pdf. The pdf
// file is a placeholder: it carries the same plain text.
type Exporter struct {
	writer FileWriter
	clock  clock.Clock
}

func NewExporter(writer FileWriter, clk clock.Clock) *Exporter {
	return &Exporter{writer: writer, clock: clock.OrReal(clk)}
}

func FileName(empID string, at time.Time, f Format) string {
	return fmt.Sprintf("Payslip_%s_%d%s", empID, at.UnixMilli(), f.Extension())
}

func (e *Exporter) Export(ctx context.Context, p Payslip) (ExportResult, error) {
	text := p.Statement()
	stamp := e.clock.Now()

	textPath, err := e.writer.Write(ctx, FileName(p.EmpID(), stamp, FormatText), text)
	if err != nil {
		return ExportResult{}, payrollerrors.ErrExportFailed.WithCause(err)
	}

	pdfPath, err := e.writer.Write(ctx, FileName(p.EmpID(), stamp, FormatPDF), text)
	if err != nil {
		return ExportResult{}, payrollerrors.ErrExportFailed.WithCause(err)
	}

	return ExportResult{TextPath: textPath, PDFPath: pdfPath}, nil
}
