package dashboard

import (
	"cmp"
	"slices"
	"strings"

	"go-payroll/internal/employee"
	"go-payroll/internal/payroll"
)

const TopCount = 3

type Kind string

const (
	KindEmployee Kind = "EmployeeDashboard"
	KindManager  Kind = "ManagerDashboard"
)

// View is what a dashboard shows. Top is empty for the manager view.
type View struct {
	Kind       Kind
	Name       string
	Top        []payroll.Summary
	YearToDate float64
}

func (v View) String() string {
	var b strings.Builder
	switch v.Kind {
	case KindManager:
		b.WriteString("\n=== MANAGER DASHBOARD ===\n")
		b.WriteString("Manager: " + v.Name + "\n")
		b.WriteString("Dashboard Type: " + string(v.Kind) + "\n")
		b.WriteString("\nTeam Total YTD Earnings: " + payroll.FormatAmount(v.YearToDate) + "\n")
	default:
		b.WriteString("\n=== EMPLOYEE DASHBOARD ===\n")
		b.WriteString("Welcome, " + v.Name + "\n")
		b.WriteString("Dashboard Type: " + string(v.Kind) + "\n")
		b.WriteString("\nRecent Payslips (Top 3):\n")
		for _, s := range v.Top {
			b.WriteString(s.String() + "\n")
		}
		b.WriteString("\nYear-To-Date Earnings: " + payroll.FormatAmount(v.YearToDate) + "\n")
	}
	return b.String()
}

type Dashboard interface {
	Render(payslips []payroll.Summary, emp employee.Employee) View
}

type EmployeeDashboard struct{}

// Render ranks a copy of payslips by net pay, highest first. Equal amounts
// keep their input order.
func (EmployeeDashboard) Render(payslips []payroll.Summary, emp employee.Employee) View {
	ranked := slices.Clone(payslips)
	slices.SortStableFunc(ranked, func(a, b payroll.Summary) int {
		return cmp.Compare(b.NetPay, a.NetPay)
	})

	top := ranked
	if len(top) > TopCount {
		top = top[:TopCount]
	}

	return View{
		Kind:       KindEmployee,
		Name:       emp.Name(),
		Top:        top,
		YearToDate: yearToDate(payslips),
	}
}

type ManagerDashboard struct{}

func (ManagerDashboard) Render(payslips []payroll.Summary, emp employee.Employee) View {
	return View{
		Kind:       KindManager,
		Name:       emp.Name(),
		YearToDate: yearToDate(payslips),
	}
}

func yearToDate(payslips []payroll.Summary) float64 {
	var total float64
	for _, p := range payslips {
		total += p.NetPay
	}
	return total
}

var factories = map[string]func() Dashboard{
	"EMPLOYEE": func() Dashboard { return EmployeeDashboard{} },
	"MANAGER":  func() Dashboard { return ManagerDashboard{} },
}

// Select returns the dashboard for role. Matching is exact and
// case-sensitive.
func Select(role string) (Dashboard, bool) {
	f, ok := factories[role]
	if !ok {
		return nil, false
	}
	return f(), true
}

// DemoPayslips is the sample history shown when no payslips are supplied.
func DemoPayslips() []payroll.Summary {
	return []payroll.Summary{
		{Month: "Jan", NetPay: 30000},
		{Month: "Feb", NetPay: 32000},
		{Month: "Mar", NetPay: 31000},
		{Month: "Apr", NetPay: 33000},
		{Month: "May", NetPay: 34000},
	}
}
