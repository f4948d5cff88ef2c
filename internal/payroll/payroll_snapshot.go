package payroll

import (
	"strings"

	"go-payroll/internal/employee"
	payrollerrors "go-payroll/internal/payroll/errors"
)

// Snapshot is the transferable form of a payslip.
type Snapshot struct {
	EmpID      string  `json:"emp_id"`
	EmpName    string  `json:"emp_name"`
	Month      string  `json:"month"`
	Itemized   bool    `json:"itemized"`
	Basic      float64 `json:"basic,omitempty"`
	HRA        float64 `json:"hra,omitempty"`
	DA         float64 `json:"da,omitempty"`
	Allowances float64 `json:"allowances,omitempty"`
	PF         float64 `json:"pf,omitempty"`
	Tax        float64 `json:"tax,omitempty"`
	NetPay     float64 `json:"net_pay"`
}

func (p Payslip) Snapshot() Snapshot {
	c := p.components
	return Snapshot{
		EmpID:      p.EmpID(),
		EmpName:    p.EmpName(),
		Month:      p.month,
		Itemized:   c.itemized,
		Basic:      c.basic,
		HRA:        c.hra,
		DA:         c.da,
		Allowances: c.allowances,
		PF:         c.pf,
		Tax:        c.tax,
		NetPay:     c.netPay,
	}
}

// FromSnapshot restores a payslip exactly as it was captured; nothing is
// recomputed.
func FromSnapshot(s Snapshot) (Payslip, error) {
	if strings.TrimSpace(s.EmpID) == "" {
		return Payslip{}, payrollerrors.ErrMissingEmployee
	}
	if strings.TrimSpace(s.Month) == "" {
		return Payslip{}, payrollerrors.ErrMissingMonth
	}

	emp := employee.NewEmployee(s.EmpID, s.EmpName, "", "")
	if !s.Itemized {
		return NewIssuedPayslip(&emp, s.Month, s.NetPay), nil
	}

	return Payslip{
		employee: &emp,
		components: SalaryComponents{
			basic:      s.Basic,
			hra:        s.HRA,
			da:         s.DA,
			allowances: s.Allowances,
			pf:         s.PF,
			tax:        s.Tax,
			netPay:     s.NetPay,
			computed:   true,
			itemized:   true,
		},
		month: s.Month,
	}, nil
}
