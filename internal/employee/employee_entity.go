package employee

import "fmt"

// Employee is an identity record. It is never modified after construction;
// payslips and dashboards hold it by reference without owning it.
type Employee struct {
	empID string
	name  string
	email string
	phone string
}

func NewEmployee(empID, name, email, phone string) Employee {
	return Employee{empID: empID, name: name, email: email, phone: phone}
}

func (e Employee) EmpID() string { return e.empID }
func (e Employee) Name() string  { return e.name }
func (e Employee) Email() string { return e.email }
func (e Employee) Phone() string { return e.phone }

// UserAccount holds login data. The plaintext password is gone once the
// account exists; only its digest is kept.
type UserAccount struct {
	username       string
	passwordDigest string
}

func NewUserAccount(username, passwordDigest string) UserAccount {
	return UserAccount{username: username, passwordDigest: passwordDigest}
}

func (a UserAccount) Username() string       { return a.username }
func (a UserAccount) PasswordDigest() string { return a.passwordDigest }

func (a UserAccount) String() string {
	return fmt.Sprintf("UserAccount{username=%q}", a.username)
}

// Registration composes an employee with the account created for them.
type Registration struct {
	Employee Employee
	Account  UserAccount
}

func (r Registration) String() string {
	return "Employee Registered Successfully:\n" +
		"Employee ID : " + r.Employee.EmpID() + "\n" +
		"Name        : " + r.Employee.Name() + "\n" +
		"Email       : " + r.Employee.Email() + "\n" +
		"Phone       : " + r.Employee.Phone() + "\n" +
		"Username    : " + r.Account.Username()
}

// Record is one persisted registration line.
type Record struct {
	EmpID    string
	Name     string
	Email    string
	Phone    string
	Username string
}
