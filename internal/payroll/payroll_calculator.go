package payroll

import (
	"math"
	"strings"

	"go-payroll/internal/employee"
	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Calculator derives deductions and net pay from monthly earnings.
type Calculator struct {
	logger *zap.Logger
}

func NewCalculator(logger ...*zap.Logger) *Calculator {
	l := zap.L().Named("payroll.calculator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.calculator")
	}
	return &Calculator{logger: l}
}

// ComputePayslip applies
//
//	gross = basic + hra + da + allowances
//	pf    = 12% of basic
//	tax   = 10% of gross
//	net   = gross - (pf + tax)
func (c *Calculator) ComputePayslip(emp *employee.Employee, month string, basic, hra, da, allowances float64) (Payslip, error) {
	if emp == nil {
		return Payslip{}, payrollerrors.ErrMissingEmployee
	}

	month = strings.TrimSpace(month)
	if month == "" {
		return Payslip{}, payrollerrors.ErrMissingMonth
	}

	for _, v := range []float64{basic, hra, da, allowances} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Payslip{}, payrollerrors.ErrInvalidAmount
		}
		if v < 0 {
			c.logger.Warn("compute payslip negative earning",
				zap.String("emp_id", emp.EmpID()),
				zap.String("month", month),
			)
			return Payslip{}, payrollerrors.ErrNegativeEarning
		}
	}

	components := NewSalaryComponents(basic, hra, da, allowances)
	if err := Fill(&components); err != nil {
		return Payslip{}, err
	}

	c.logger.Debug("payslip computed",
		zap.String("emp_id", emp.EmpID()),
		zap.String("month", month),
		zap.Float64("net_pay", components.NetPay()),
	)

	return Payslip{employee: emp, components: components, month: month}, nil
}

var (
	pfRate  = decimal.NewFromFloat(PFRate)
	taxRate = decimal.NewFromFloat(TaxRate)
)

// Fill computes pf, tax and net pay into c. The arithmetic is done in
// decimal and only the results are converted back. A second call on the
// same components returns ErrAlreadyComputed.
func Fill(c *SalaryComponents) error {
	basic := decimal.NewFromFloat(c.basic)
	gross := decimal.Sum(basic,
		decimal.NewFromFloat(c.hra),
		decimal.NewFromFloat(c.da),
		decimal.NewFromFloat(c.allowances),
	)

	pf := basic.Mul(pfRate)
	tax := gross.Mul(taxRate)
	net := gross.Sub(pf.Add(tax))

	return c.fill(pf.InexactFloat64(), tax.InexactFloat64(), net.InexactFloat64())
}
