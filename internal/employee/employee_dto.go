package employee

type CreateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name" binding:"required"`
	Position       string `json:"position" binding:"required"`
	Department     string `json:"department" binding:"required"`
	StartDate      string `json:"start_date" binding:"required"`
	BankAccount    string `json:"bank_account" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
}

type UpdateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Position       string `json:"position"`
	Department     string `json:"department"`
	StartDate      string `json:"start_date"`
	BankAccount    string `json:"bank_account"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Position       string `json:"position"`
	Department     string `json:"department"`
	StartDate      string `json:"start_date"`
	BankAccount    string `json:"bank_account"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}
