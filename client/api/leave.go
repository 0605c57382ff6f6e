package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/viant/clinic/schema"
)

// ErrStatusNotUpdated is returned when the server acknowledged a status change without success.
var ErrStatusNotUpdated = errors.New("leave status not updated")

// Leaves manages leave requests.
type Leaves struct {
	client *Client
}

// Add submits a leave request after local validation.
func (l *Leaves) Add(ctx context.Context, leave *schema.Leave) error {
	if err := leave.Validate(); err != nil {
		return err
	}
	return l.client.Do(ctx, http.MethodPost, "/leave/add-Leave", nil, leave, nil)
}

func (l *Leaves) ListByEmployee(ctx context.Context, employeeID string) ([]*schema.Leave, error) {
	return l.list(ctx, "/leave/employee-get-leaves/"+url.PathEscape(employeeID))
}

func (l *Leaves) ListByCenter(ctx context.Context, centerID string) ([]*schema.Leave, error) {
	return l.list(ctx, "/leave/all-leave/"+url.PathEscape(centerID))
}

func (l *Leaves) list(ctx context.Context, path string) ([]*schema.Leave, error) {
	var out schema.LeaveList
	if err := l.client.Do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (l *Leaves) UpdateStatus(ctx context.Context, id string, status schema.LeaveStatus) error {
	var out schema.Result
	if err := l.client.Do(ctx, http.MethodPatch, "/leave/update-leave/"+url.PathEscape(id), nil, &schema.LeaveStatusUpdate{Status: status}, &out); err != nil {
		return err
	}
	if !out.Success {
		return ErrStatusNotUpdated
	}
	return nil
}
