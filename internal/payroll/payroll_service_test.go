package payroll_test

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	validationerrors "go-payroll/internal/validation/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func setupService(t *testing.T, withSigner bool) (payroll.Service, *stepClock) {
	t.Helper()

	clk := &stepClock{now: exportTime}
	var signer *payroll.LinkSigner
	if withSigner {
		var err error
		signer, err = payroll.NewLinkSigner("test-secret")
		require.NoError(t, err)
	}

	exporter := payroll.NewExporter(payroll.NewDirWriter(t.TempDir()), clk)
	svc := payroll.NewService(
		payroll.NewCalculator(),
		payroll.NewDownloadService(exporter, clk),
		signer,
		time.Minute,
		clk,
	)
	return svc, clk
}

func computeRequest() payroll.ComputePayslipRequest {
	return payroll.ComputePayslipRequest{
		EmpID:      "EMP-1001",
		Name:       "Asha",
		Month:      "Jan",
		Basic:      20000,
		HRA:        5000,
		DA:         3000,
		Allowances: 2000,
	}
}

func TestPayrollService_Compute(t *testing.T) {
	svc, _ := setupService(t, false)

	t.Run("returns the snapshot and rendering", func(t *testing.T) {
		resp, err := svc.Compute(context.Background(), computeRequest())
		require.NoError(t, err)

		assert.InDelta(t, 30000, resp.Gross, delta)
		assert.InDelta(t, 24600, resp.Payslip.NetPay, delta)
		assert.Contains(t, resp.Text, "=========== PAYSLIP ===========")
	})

	t.Run("validates the employee id", func(t *testing.T) {
		req := computeRequest()
		req.EmpID = "E-1"

		_, err := svc.Compute(context.Background(), req)

		assert.ErrorIs(t, err, validationerrors.ErrEmployeeIDInvalid)
	})
}

func TestPayrollService_LinkAndDownload(t *testing.T) {
	ctx := context.Background()

	t.Run("a fresh link downloads the statement", func(t *testing.T) {
		svc, clk := setupService(t, true)

		link, err := svc.IssueLink(ctx, computeRequest())
		require.NoError(t, err)
		assert.True(t, link.ExpiresAt.Equal(exportTime.Add(time.Minute)))
		assert.True(t, strings.HasPrefix(link.DownloadURL, payroll.DownloadPath+"?token="))

		u, err := url.Parse(link.DownloadURL)
		require.NoError(t, err)
		assert.Equal(t, link.Link, u.Query().Get("token"))

		clk.now = exportTime.Add(10 * time.Second)
		resp, err := svc.Download(ctx, link.Link, payroll.FormatPDF)
		require.NoError(t, err)

		assert.Equal(t, "application/pdf", resp.ContentType)
		assert.True(t, strings.HasSuffix(resp.FileName, ".pdf"))
		assert.Contains(t, resp.Content, "Net Pay       : 24600.00")
		assert.FileExists(t, resp.TextPath)
	})

	t.Run("an old link is expired", func(t *testing.T) {
		svc, clk := setupService(t, true)

		link, err := svc.IssueLink(ctx, computeRequest())
		require.NoError(t, err)

		clk.now = exportTime.Add(61 * time.Second)
		_, err = svc.Download(ctx, link.Link, payroll.FormatText)

		assert.ErrorIs(t, err, payrollerrors.ErrDownloadExpired)
	})

	t.Run("links need a signing secret", func(t *testing.T) {
		svc, _ := setupService(t, false)

		_, err := svc.IssueLink(ctx, computeRequest())
		assert.ErrorIs(t, err, payrollerrors.ErrSigningUnavailable)

		_, err = svc.Download(ctx, "anything", payroll.FormatText)
		assert.ErrorIs(t, err, payrollerrors.ErrSigningUnavailable)
	})
}
