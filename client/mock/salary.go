package mock

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/viant/clinic/schema"
)

const alreadyPaid = "Salary already fully paid for this month."

func (s *Service) due(employee *schema.Employee, year, month int) float64 {
	paid := 0.0
	for _, record := range s.payments.Values() {
		if record.EmployeeID == employee.ID && record.Year == year && record.Month == month {
			paid += record.Amount
		}
	}
	if paid >= employee.Salary {
		return 0
	}
	return employee.Salary - paid
}

func (s *Service) checkDue(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	employee, ok := s.employees.Get(query.Get("employeeId"))
	if !ok {
		writeMessage(w, http.StatusNotFound, "Employee not found")
		return
	}
	year, yearErr := strconv.Atoi(query.Get("year"))
	month, monthErr := strconv.Atoi(query.Get("month"))
	if yearErr != nil || monthErr != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid year or month")
		return
	}
	writeJSON(w, http.StatusOK, &schema.Due{DueAmount: s.due(employee, year, month)})
}

func (s *Service) giveSalary(w http.ResponseWriter, r *http.Request) {
	var payment schema.Payment
	if !readJSON(w, r, &payment) {
		return
	}
	employee, ok := s.employees.Get(payment.EmployeeID)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Employee not found")
		return
	}
	if payment.StripeToken == "" || payment.Amount <= 0 {
		writeMessage(w, http.StatusBadRequest, "Invalid payment")
		return
	}
	due := s.due(employee, payment.Year, payment.Month)
	if due == 0 {
		writeJSON(w, http.StatusOK, &schema.Result{Success: false, Message: alreadyPaid})
		return
	}
	if payment.Amount > due {
		writeMessage(w, http.StatusBadRequest, "Amount exceeds due")
		return
	}
	record := &schema.SalaryRecord{
		ID:            uuid.NewString(),
		EmployeeID:    employee.ID,
		Name:          employee.Name,
		Position:      employee.Position,
		Amount:        payment.Amount,
		PaymentMethod: payment.PaymentMethod,
		Year:          payment.Year,
		Month:         payment.Month,
		CenterID:      employee.CenterID,
	}
	s.payments.Put(record.ID, record)
	writeJSON(w, http.StatusOK, &schema.Result{Success: true, Message: "Salary paid"})
}

func (s *Service) salarySheet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	centerID := query.Get("centerId")
	name := strings.ToLower(query.Get("name"))
	position := strings.ToLower(query.Get("position"))
	month := query.Get("month")
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = schema.DefaultSheetLimit
	}
	var matched []*schema.SalaryRecord
	for _, record := range s.sortedPayments() {
		if centerID != "" && record.CenterID != centerID {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(record.Name), name) {
			continue
		}
		if position != "" && !strings.Contains(strings.ToLower(record.Position), position) {
			continue
		}
		if month != "" && month != fmt.Sprintf("%04d-%02d", record.Year, record.Month) && month != strconv.Itoa(record.Month) {
			continue
		}
		matched = append(matched, record)
	}
	totalPages := (len(matched) + limit - 1) / limit
	if totalPages == 0 {
		totalPages = 1
	}
	start := (page - 1) * limit
	sheet := []*schema.SalaryRecord{}
	if start < len(matched) {
		end := start + limit
		if end > len(matched) {
			end = len(matched)
		}
		sheet = matched[start:end]
	}
	writeJSON(w, http.StatusOK, &schema.SalarySheet{Sheet: sheet, TotalPages: totalPages})
}

func (s *Service) sortedPayments() []*schema.SalaryRecord {
	records := s.payments.Values()
	sort.Slice(records, func(i, j int) bool {
		if records[i].Year != records[j].Year {
			return records[i].Year < records[j].Year
		}
		if records[i].Month != records[j].Month {
			return records[i].Month < records[j].Month
		}
		return records[i].Name < records[j].Name
	})
	return records
}
