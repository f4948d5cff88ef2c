package payroll

import (
	"strings"

	"go-payroll/internal/employee"
	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/shopspring/decimal"
)

const (
	PFRate  = 0.12
	TaxRate = 0.10
)

// SalaryComponents holds the earnings of one month and, once the
// calculator has run, the derived deductions.
type SalaryComponents struct {
	basic      float64
	hra        float64
	da         float64
	allowances float64

	pf       float64
	tax      float64
	netPay   float64
	computed bool
	itemized bool
}

func NewSalaryComponents(basic, hra, da, allowances float64) SalaryComponents {
	return SalaryComponents{
		basic:      basic,
		hra:        hra,
		da:         da,
		allowances: allowances,
		itemized:   true,
	}
}

func (c SalaryComponents) Basic() float64      { return c.basic }
func (c SalaryComponents) HRA() float64        { return c.hra }
func (c SalaryComponents) DA() float64         { return c.da }
func (c SalaryComponents) Allowances() float64 { return c.allowances }
func (c SalaryComponents) PF() float64         { return c.pf }
func (c SalaryComponents) Tax() float64        { return c.tax }
func (c SalaryComponents) NetPay() float64     { return c.netPay }
func (c SalaryComponents) Computed() bool      { return c.computed }

func (c SalaryComponents) Gross() float64 {
	return c.basic + c.hra + c.da + c.allowances
}

// fill stores the derived values. It succeeds only once.
func (c *SalaryComponents) fill(pf, tax, netPay float64) error {
	if c.computed {
		return payrollerrors.ErrAlreadyComputed
	}
	c.pf, c.tax, c.netPay = pf, tax, netPay
	c.computed = true
	return nil
}

// Key identifies a payslip: one per employee per month.
type Key struct {
	EmpID string
	Month string
}

// Payslip is a finalized salary record. It references its employee and
// owns its components; nothing changes after construction.
type Payslip struct {
	employee   *employee.Employee
	components SalaryComponents
	month      string
}

// NewIssuedPayslip rebuilds a payslip whose breakdown is not available,
// only its net pay.
func NewIssuedPayslip(emp *employee.Employee, month string, netPay float64) Payslip {
	return Payslip{
		employee:   emp,
		components: SalaryComponents{netPay: netPay, computed: true},
		month:      month,
	}
}

func (p Payslip) Employee() *employee.Employee { return p.employee }
func (p Payslip) Components() SalaryComponents { return p.components }
func (p Payslip) Month() string                { return p.month }
func (p Payslip) NetPay() float64              { return p.components.netPay }
func (p Payslip) Itemized() bool               { return p.components.itemized }

func (p Payslip) EmpID() string {
	if p.employee == nil {
		return ""
	}
	return p.employee.EmpID()
}

func (p Payslip) EmpName() string {
	if p.employee == nil {
		return ""
	}
	return p.employee.Name()
}

// Clone returns an independent copy with the same values.
func (p Payslip) Clone() Payslip {
	return Payslip{
		employee:   p.employee,
		components: p.components,
		month:      p.month,
	}
}

// Equal compares employee id and month only; amounts are ignored.
func (p Payslip) Equal(other Payslip) bool {
	return p.Key() == other.Key()
}

func (p Payslip) Key() Key {
	return Key{EmpID: p.EmpID(), Month: p.month}
}

func (p Payslip) Summary() Summary {
	return Summary{Month: p.month, NetPay: p.components.netPay}
}

// FormatAmount renders v with two decimal places, rounding half away from
// zero.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// String renders the full payslip. Payslips without a breakdown fall back
// to the statement.
func (p Payslip) String() string {
	if !p.components.itemized {
		return p.Statement()
	}

	c := p.components
	var b strings.Builder
	b.WriteString("\n=========== PAYSLIP ===========\n")
	b.WriteString("Month        : " + p.month + "\n")
	b.WriteString("Employee ID  : " + p.EmpID() + "\n")
	b.WriteString("Employee Name: " + p.EmpName() + "\n\n")
	b.WriteString("---- Earnings ----\n")
	b.WriteString("Basic Salary  : " + FormatAmount(c.basic) + "\n")
	b.WriteString("HRA           : " + FormatAmount(c.hra) + "\n")
	b.WriteString("DA            : " + FormatAmount(c.da) + "\n")
	b.WriteString("Allowances    : " + FormatAmount(c.allowances) + "\n\n")
	b.WriteString("---- Deductions ----\n")
	b.WriteString("PF            : " + FormatAmount(c.pf) + "\n")
	b.WriteString("Tax           : " + FormatAmount(c.tax) + "\n\n")
	b.WriteString("Net Pay       : " + FormatAmount(c.netPay) + "\n")
	b.WriteString("==============================\n")
	return b.String()
}

// Statement is the short form written to downloads.
func (p Payslip) Statement() string {
	return "PAYSLIP\n" +
		"Employee ID   : " + p.EmpID() + "\n" +
		"Employee Name : " + p.EmpName() + "\n" +
		"Month         : " + p.month + "\n" +
		"Net Pay       : " + FormatAmount(p.components.netPay) + "\n"
}

// Summary is the month/net pay pair shown on dashboards.
type Summary struct {
	Month  string  `json:"month"`
	NetPay float64 `json:"net_pay"`
}

func (s Summary) String() string {
	return s.Month + " : " + FormatAmount(s.NetPay)
}
