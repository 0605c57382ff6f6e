package schema

type (
	// SalaryRecord is one payment made to an employee.
	SalaryRecord struct {
		ID            string  `json:"_id,omitempty"`
		EmployeeID    string  `json:"employeeId"`
		Name          string  `json:"name,omitempty"`
		Position      string  `json:"position,omitempty"`
		Amount        float64 `json:"amount"`
		PaymentMethod string  `json:"paymentMethod,omitempty"`
		Year          int     `json:"year"`
		Month         int     `json:"month"`
		CenterID      string  `json:"centerId,omitempty"`
	}

	// SheetQuery filters and pages the salary sheet of a center.
	SheetQuery struct {
		CenterID string
		Name     string
		Position string
		Month    string
		Page     int
		Limit    int
	}

	SalarySheet struct {
		Sheet      []*SalaryRecord `json:"sheet"`
		TotalPages int             `json:"totalPages"`
	}

	Due struct {
		DueAmount float64 `json:"dueAmount"`
	}

	// Payment pays (part of) a monthly salary with an already tokenized card.
	Payment struct {
		EmployeeID    string  `json:"employeeId"`
		Name          string  `json:"name"`
		Amount        float64 `json:"amount"`
		PaymentMethod string  `json:"paymentMethod"`
		CenterID      string  `json:"centerId"`
		StripeToken   string  `json:"stripeToken"`
		Year          int     `json:"year"`
		Month         int     `json:"month"`
	}
)

// DefaultSheetLimit is the page size used when SheetQuery.Limit is not set.
const DefaultSheetLimit = 10
