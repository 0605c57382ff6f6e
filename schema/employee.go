package schema

type (
	Employee struct {
		ID           string  `json:"_id,omitempty"`
		Name         string  `json:"name"`
		Email        string  `json:"email,omitempty"`
		Phone        string  `json:"phone,omitempty"`
		Position     string  `json:"position,omitempty"`
		Salary       float64 `json:"salary,omitempty"`
		Status       string  `json:"status,omitempty"`
		ProfileImage string  `json:"profileImage,omitempty"`
		Department   string  `json:"department,omitempty"`
		CenterID     string  `json:"centerId,omitempty"`
	}

	EmployeeFilter struct {
		Name     string
		Position string
	}

	EmployeeList struct {
		Employees []*Employee `json:"employees"`
	}

	EmployeeDashboard struct {
		Employee      *Employee       `json:"employee"`
		SalaryHistory []*SalaryRecord `json:"salaryHistory"`
	}
)
