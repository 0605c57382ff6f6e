package mock

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/viant/clinic/schema"
)

type userKey struct{}

// Register registers all endpoints onto r.
func (s *Service) Register(r chi.Router) {
	// users
	r.Post("/users/login", s.override(&s.LoginHandler, s.login))
	r.Post("/users/refreshToken", s.override(&s.RefreshHandler, s.refresh))
	r.Get("/users/profile", s.authorized(s.override(&s.ProfileHandler, s.profile)))

	// employees and salaries
	r.Get("/employee/get-employee", s.authorized(s.listEmployees))
	r.Put("/employee/update-employee/{id}", s.authorized(s.updateEmployee))
	r.Delete("/employee/delete-employee/{id}", s.authorized(s.deleteEmployee))
	r.Get("/employee/employee-dashboard/{id}", s.authorized(s.employeeDashboard))
	r.Get("/employee/salary-sheet", s.authorized(s.salarySheet))
	r.Get("/employee/check-due", s.authorized(s.checkDue))
	r.Post("/employee/give-salary", s.authorized(s.giveSalary))

	// leaves
	r.Post("/leave/add-Leave", s.authorized(s.addLeave))
	r.Get("/leave/employee-get-leaves/{id}", s.authorized(s.employeeLeaves))
	r.Get("/leave/all-leave/{centerId}", s.authorized(s.centerLeaves))
	r.Patch("/leave/update-leave/{id}", s.authorized(s.updateLeave))

	r.Get("/diagnostic/dashboard/{centerId}", s.authorized(s.diagnosticDashboard))
}

// override dispatches to the handler stored in field when set, otherwise to fallback.
func (s *Service) override(field *http.HandlerFunc, fallback http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if *field != nil {
			(*field)(w, r)
			return
		}
		fallback(w, r)
	}
}

// authorized rejects calls without a valid bearer access token.
func (s *Service) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		claims, err := s.ParseAccess(token)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		acc, ok := s.accounts.Get(claims.Email)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "Unknown user")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), userKey{}, acc.user)))
	}
}

func currentUser(r *http.Request) *schema.User {
	user, _ := r.Context().Value(userKey{}).(*schema.User)
	return user
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, &schema.Result{Success: status < http.StatusBadRequest, Message: message})
}

func readJSON(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
