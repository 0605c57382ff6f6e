package mock

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/viant/clinic/schema"
)

func (s *Service) listEmployees(w http.ResponseWriter, r *http.Request) {
	name := strings.ToLower(r.URL.Query().Get("name"))
	position := strings.ToLower(r.URL.Query().Get("position"))
	centerID := currentUser(r).CenterID
	var employees []*schema.Employee
	for _, employee := range s.sortedEmployees() {
		if centerID != "" && employee.CenterID != centerID {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(employee.Name), name) {
			continue
		}
		if position != "" && !strings.Contains(strings.ToLower(employee.Position), position) {
			continue
		}
		employees = append(employees, employee)
	}
	writeJSON(w, http.StatusOK, &schema.EmployeeList{Employees: employees})
}

func (s *Service) updateEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, ok := s.employees.Get(id)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Employee not found")
		return
	}
	var update schema.Employee
	if !readJSON(w, r, &update) {
		return
	}
	update.ID = id
	if update.CenterID == "" {
		update.CenterID = existing.CenterID
	}
	s.employees.Put(id, &update)
	writeMessage(w, http.StatusOK, "Employee updated")
}

func (s *Service) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.employees.Get(id); !ok {
		writeMessage(w, http.StatusNotFound, "Employee not found")
		return
	}
	s.employees.Delete(id)
	writeMessage(w, http.StatusOK, "Employee deleted")
}

func (s *Service) employeeDashboard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	employee, ok := s.employees.Get(id)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Employee not found")
		return
	}
	history := []*schema.SalaryRecord{}
	for _, record := range s.sortedPayments() {
		if record.EmployeeID == id {
			history = append(history, record)
		}
	}
	writeJSON(w, http.StatusOK, &schema.EmployeeDashboard{Employee: employee, SalaryHistory: history})
}

func (s *Service) diagnosticDashboard(w http.ResponseWriter, r *http.Request) {
	centerID := chi.URLParam(r, "centerId")
	totalEmployees, pendingLeaves := 0, 0
	totalPaid := 0.0
	for _, employee := range s.employees.Values() {
		if employee.CenterID == centerID {
			totalEmployees++
		}
	}
	for _, leave := range s.leaves.Values() {
		if leave.CenterID == centerID && leave.Status == schema.LeavePending {
			pendingLeaves++
		}
	}
	for _, record := range s.payments.Values() {
		if record.CenterID == centerID {
			totalPaid += record.Amount
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"totalEmployees": totalEmployees,
		"pendingLeaves":  pendingLeaves,
		"totalPaid":      totalPaid,
	})
}

func (s *Service) sortedEmployees() []*schema.Employee {
	employees := s.employees.Values()
	sort.Slice(employees, func(i, j int) bool { return employees[i].Name < employees[j].Name })
	return employees
}
