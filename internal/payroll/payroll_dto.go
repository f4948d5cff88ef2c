package payroll

import "time"

type ComputePayslipRequest struct {
	EmpID      string  `json:"emp_id" binding:"required,empid"`
	Name       string  `json:"name" binding:"required"`
	Month      string  `json:"month" binding:"required"`
	Basic      float64 `json:"basic"`
	HRA        float64 `json:"hra"`
	DA         float64 `json:"da"`
	Allowances float64 `json:"allowances"`
}

type PayslipResponse struct {
	Payslip Snapshot `json:"payslip"`
	Gross   float64  `json:"gross"`
	Text    string   `json:"text"`
}

type LinkResponse struct {
	TokenID     string    `json:"token_id"`
	Link        string    `json:"link"`
	ExpiresAt   time.Time `json:"expires_at"`
	DownloadURL string    `json:"download_url"`
}

type DownloadResponse struct {
	FileName    string
	ContentType string
	Content     string
	TextPath    string
	PDFPath     string
}

func toPayslipResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		Payslip: p.Snapshot(),
		Gross:   p.Components().Gross(),
		Text:    p.String(),
	}
}
