package dashboard

import "go-payroll/internal/payroll"

type RenderRequest struct {
	Role     string            `json:"role" binding:"required"`
	EmpID    string            `json:"emp_id"`
	Name     string            `json:"name" binding:"required"`
	Payslips []payroll.Summary `json:"payslips"`
}

type ViewResponse struct {
	Kind       Kind              `json:"kind"`
	Name       string            `json:"name"`
	Top        []payroll.Summary `json:"top,omitempty"`
	YearToDate float64           `json:"year_to_date"`
	Text       string            `json:"text"`
}

func toViewResponse(v View) ViewResponse {
	return ViewResponse{
		Kind:       v.Kind,
		Name:       v.Name,
		Top:        v.Top,
		YearToDate: v.YearToDate,
		Text:       v.String(),
	}
}
