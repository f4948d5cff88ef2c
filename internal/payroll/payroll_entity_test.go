package payroll_test

import (
	"testing"

	"go-payroll/internal/payroll"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayslip_Equal(t *testing.T) {
	emp := newEmployee("EMP-1010", "John David")

	a := payroll.NewIssuedPayslip(emp, "January 2026", 48500)
	b := payroll.NewIssuedPayslip(emp, "January 2026", 51000)
	c := payroll.NewIssuedPayslip(emp, "February 2026", 48500)
	other := payroll.NewIssuedPayslip(newEmployee("EMP-2020", "John David"), "January 2026", 48500)

	assert.True(t, a.Equal(b), "same employee and month are the same slip")
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(other))
	assert.Equal(t, a.Key(), b.Key())
}

func TestPayslip_KeyGroupsEqualSlips(t *testing.T) {
	emp := newEmployee("EMP-1010", "John David")

	seen := map[payroll.Key]payroll.Payslip{}
	for _, p := range []payroll.Payslip{
		payroll.NewIssuedPayslip(emp, "Jan", 1),
		payroll.NewIssuedPayslip(emp, "Jan", 2),
		payroll.NewIssuedPayslip(emp, "Feb", 3),
	} {
		seen[p.Key()] = p
	}

	assert.Len(t, seen, 2)
}

func TestPayslip_Clone(t *testing.T) {
	calc := payroll.NewCalculator()
	original, err := calc.ComputePayslip(newEmployee("EMP-1001", "Asha"), "Jan", 20000, 5000, 3000, 2000)
	require.NoError(t, err)

	copied := original.Clone()

	assert.True(t, copied.Equal(original))
	assert.Equal(t, original.Snapshot(), copied.Snapshot())
	assert.Equal(t, original.String(), copied.String())
}

func TestPayslip_Rendering(t *testing.T) {
	calc := payroll.NewCalculator()
	p, err := calc.ComputePayslip(newEmployee("EMP-1001", "Asha"), "January 2026", 20000, 5000, 3000, 2000)
	require.NoError(t, err)

	full := p.String()
	assert.Contains(t, full, "Employee ID  : EMP-1001")
	assert.Contains(t, full, "Basic Salary  : 20000.00")
	assert.Contains(t, full, "PF            : 2400.00")
	assert.Contains(t, full, "Net Pay       : 24600.00")

	assert.Equal(t,
		"PAYSLIP\n"+
			"Employee ID   : EMP-1001\n"+
			"Employee Name : Asha\n"+
			"Month         : January 2026\n"+
			"Net Pay       : 24600.00\n",
		p.Statement(),
	)

	issued := payroll.NewIssuedPayslip(newEmployee("EMP-1010", "John David"), "January 2026", 48500)
	assert.False(t, issued.Itemized())
	assert.Equal(t, issued.Statement(), issued.String())
}

func TestSnapshotRoundTrip(t *testing.T) {
	calc := payroll.NewCalculator()
	p, err := calc.ComputePayslip(newEmployee("EMP-1001", "Asha"), "Jan", 20000, 5000, 3000, 2000)
	require.NoError(t, err)

	restored, err := payroll.FromSnapshot(p.Snapshot())
	require.NoError(t, err)

	assert.Equal(t, p.Snapshot(), restored.Snapshot())
	assert.True(t, restored.Components().Computed())

	_, err = payroll.FromSnapshot(payroll.Snapshot{Month: "Jan"})
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	p := payroll.NewIssuedPayslip(newEmployee("EMP-1", "A"), "Mar", 31000)

	assert.Equal(t, payroll.Summary{Month: "Mar", NetPay: 31000}, p.Summary())
	assert.Equal(t, "Mar : 31000.00", p.Summary().String())
}
