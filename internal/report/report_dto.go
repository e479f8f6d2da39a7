package report

type SummaryRequest struct {
	Year       int    `form:"year" binding:"required,min=2000,max=2100"`
	Month      int    `form:"month" binding:"required,min=1,max=12"`
	Department string `form:"department"`
}

type DepartmentSummary struct {
	Department      string `json:"department"`
	EmployeeCount   int    `json:"employee_count"`
	TotalBaseSalary string `json:"total_base_salary"`
	TotalAllowances string `json:"total_allowances"`
	TotalDeductions string `json:"total_deductions"`
	TotalOvertime   string `json:"total_overtime"`
	TotalBonus      string `json:"total_bonus"`
	TotalGross      string `json:"total_gross"`
	TotalNet        string `json:"total_net"`
}

type SummaryResponse struct {
	Year        int                 `json:"year"`
	Month       int                 `json:"month"`
	Departments []DepartmentSummary `json:"departments"`
	GrandTotal  GrandTotal          `json:"grand_total"`
}

type GrandTotal struct {
	EmployeeCount int    `json:"employee_count"`
	TotalGross    string `json:"total_gross"`
	TotalNet      string `json:"total_net"`
}
