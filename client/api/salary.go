package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/viant/clinic/schema"
)

var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrAmountExceedsDue = errors.New("amount exceeds due")
	ErrMissingCardToken = errors.New("card token was empty")
)

// PaymentDeclinedError is returned when the API refused a payment with a 2xx answer.
type PaymentDeclinedError struct {
	Message string
}

func (e *PaymentDeclinedError) Error() string {
	return "payment declined: " + e.Message
}

// Salary reads salary sheets and pays salaries.
type Salary struct {
	client *Client
}

func (s *Salary) Sheet(ctx context.Context, query schema.SheetQuery) (*schema.SalarySheet, error) {
	values := url.Values{}
	values.Set("centerId", query.CenterID)
	values.Set("name", query.Name)
	values.Set("position", query.Position)
	values.Set("month", query.Month)
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = schema.DefaultSheetLimit
	}
	values.Set("page", strconv.Itoa(page))
	values.Set("limit", strconv.Itoa(limit))
	out := &schema.SalarySheet{}
	if err := s.client.Do(ctx, http.MethodGet, "/employee/salary-sheet", values, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CheckDue returns the unpaid part of an employee's salary for a month.
func (s *Salary) CheckDue(ctx context.Context, employeeID string, year, month int) (float64, error) {
	values := url.Values{}
	values.Set("employeeId", employeeID)
	values.Set("year", strconv.Itoa(year))
	values.Set("month", strconv.Itoa(month))
	var out schema.Due
	if err := s.client.Do(ctx, http.MethodGet, "/employee/check-due", values, nil, &out); err != nil {
		return 0, err
	}
	return out.DueAmount, nil
}

// Pay checks the amount against the current due and submits the payment.
// The card must already be tokenized by the payment provider.
func (s *Salary) Pay(ctx context.Context, payment *schema.Payment) error {
	if payment.Amount <= 0 {
		return ErrInvalidAmount
	}
	if payment.StripeToken == "" {
		return ErrMissingCardToken
	}
	due, err := s.CheckDue(ctx, payment.EmployeeID, payment.Year, payment.Month)
	if err != nil {
		return err
	}
	if payment.Amount > due {
		return fmt.Errorf("%w: %.2f > %.2f", ErrAmountExceedsDue, payment.Amount, due)
	}
	if payment.PaymentMethod == "" {
		payment.PaymentMethod = "Card"
	}
	var out schema.Result
	if err = s.client.Do(ctx, http.MethodPost, "/employee/give-salary", nil, payment, &out); err != nil {
		return err
	}
	if !out.Success {
		return &PaymentDeclinedError{Message: out.Message}
	}
	return nil
}
