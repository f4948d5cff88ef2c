package employee

type RegisterEmployeeRequest struct {
	EmpID    string `json:"emp_id" binding:"required,empid"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,payroll_email"`
	Phone    string `json:"phone" binding:"required,phone_in"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,strong_password"`
}

type RegistrationResponse struct {
	EmpID    string `json:"emp_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Username string `json:"username"`
	Summary  string `json:"summary"`
}

type EmployeeResponse struct {
	EmpID    string `json:"emp_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Username string `json:"username"`
}

func toRegistrationResponse(r Registration) RegistrationResponse {
	return RegistrationResponse{
		EmpID:    r.Employee.EmpID(),
		Name:     r.Employee.Name(),
		Email:    r.Employee.Email(),
		Phone:    r.Employee.Phone(),
		Username: r.Account.Username(),
		Summary:  r.String(),
	}
}

func toEmployeeResponse(r Record) EmployeeResponse {
	return EmployeeResponse(r)
}
