package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/viant/clinic/schema"
)

// Employees manages employee records of a diagnostic center.
type Employees struct {
	client *Client
}

func (e *Employees) List(ctx context.Context, filter schema.EmployeeFilter) ([]*schema.Employee, error) {
	query := url.Values{}
	if filter.Name != "" {
		query.Set("name", filter.Name)
	}
	if filter.Position != "" {
		query.Set("position", filter.Position)
	}
	var out schema.EmployeeList
	if err := e.client.Do(ctx, http.MethodGet, "/employee/get-employee", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Employees, nil
}

func (e *Employees) Update(ctx context.Context, id string, employee *schema.Employee) error {
	return e.client.Do(ctx, http.MethodPut, "/employee/update-employee/"+url.PathEscape(id), nil, employee, nil)
}

func (e *Employees) Delete(ctx context.Context, id string) error {
	return e.client.Do(ctx, http.MethodDelete, "/employee/delete-employee/"+url.PathEscape(id), nil, nil, nil)
}

// Dashboard returns an employee's record with salary history.
func (e *Employees) Dashboard(ctx context.Context, employeeID string) (*schema.EmployeeDashboard, error) {
	out := &schema.EmployeeDashboard{}
	if err := e.client.Do(ctx, http.MethodGet, "/employee/employee-dashboard/"+url.PathEscape(employeeID), nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}
