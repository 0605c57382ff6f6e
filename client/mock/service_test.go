package mock

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/clinic/schema"
)

func newTestServer(options ...Option) *HTTPTestServer {
	options = append([]Option{
		WithUser(&schema.User{ID: "u1", Email: "admin@clinic.test", Role: schema.RoleDiagnostic, CenterID: "c1"}, "secret"),
		WithEmployee(&schema.Employee{ID: "e1", Name: "Alice", Position: "Nurse", Salary: 1000, CenterID: "c1"}),
	}, options...)
	return NewHTTPTestServer(options...)
}

func call(t *testing.T, method, URL, token string, body interface{}, out interface{}) int {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, URL, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		_ = json.NewDecoder(resp.Body).Decode(out)
	}
	return resp.StatusCode
}

func TestService_LoginRefreshProfile(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	var login schema.LoginResponse
	status := call(t, http.MethodPost, server.URL+"/users/login", "", &schema.LoginRequest{Email: "admin@clinic.test", Password: "bad"}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status = call(t, http.MethodPost, server.URL+"/users/login", "", &schema.LoginRequest{Email: "admin@clinic.test", Password: "secret"}, &login)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, login.AccessToken)
	assert.NotEmpty(t, login.RefreshToken)
	assert.Equal(t, schema.RoleDiagnostic, login.User.Role)

	var profile schema.ProfileResponse
	status = call(t, http.MethodGet, server.URL+"/users/profile", login.AccessToken, nil, &profile)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "u1", profile.User.ID)

	server.RevokeAccess(login.AccessToken)
	status = call(t, http.MethodGet, server.URL+"/users/profile", login.AccessToken, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	var refreshed schema.RefreshResponse
	status = call(t, http.MethodPost, server.URL+"/users/refreshToken", "", &schema.RefreshRequest{Token: login.RefreshToken}, &refreshed)
	require.Equal(t, http.StatusOK, status)
	status = call(t, http.MethodGet, server.URL+"/users/profile", refreshed.AccessToken, nil, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, server.RefreshCalls())

	server.RevokeRefresh(login.RefreshToken)
	status = call(t, http.MethodPost, server.URL+"/users/refreshToken", "", &schema.RefreshRequest{Token: login.RefreshToken}, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestService_AccessExpiry(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	server := newTestServer(WithClock(clock), WithAccessTTL(time.Minute))
	defer server.Close()

	access, _, err := server.IssueTokens("admin@clinic.test")
	require.NoError(t, err)
	claims, err := server.ParseAccess(access)
	require.NoError(t, err)
	assert.Equal(t, "admin@clinic.test", claims.Email)

	now = now.Add(2 * time.Minute)
	_, err = server.ParseAccess(access)
	assert.Error(t, err)
}

func TestService_Salary(t *testing.T) {
	server := newTestServer()
	defer server.Close()
	access, _, err := server.IssueTokens("admin@clinic.test")
	require.NoError(t, err)

	var due schema.Due
	status := call(t, http.MethodGet, server.URL+"/employee/check-due?employeeId=e1&year=2025&month=3", access, nil, &due)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1000, due.DueAmount)

	payment := &schema.Payment{EmployeeID: "e1", Name: "Alice", Amount: 600, PaymentMethod: "Card", CenterID: "c1", StripeToken: "tok_1", Year: 2025, Month: 3}
	var result schema.Result
	status = call(t, http.MethodPost, server.URL+"/employee/give-salary", access, payment, &result)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, result.Success)

	status = call(t, http.MethodPost, server.URL+"/employee/give-salary", access, payment, nil)
	assert.Equal(t, http.StatusBadRequest, status, "exceeds remaining due")

	payment.Amount = 400
	status = call(t, http.MethodPost, server.URL+"/employee/give-salary", access, payment, &result)
	require.Equal(t, http.StatusOK, status)
	status = call(t, http.MethodPost, server.URL+"/employee/give-salary", access, payment, &result)
	require.Equal(t, http.StatusOK, status)
	assert.False(t, result.Success)
	assert.Equal(t, alreadyPaid, result.Message)

	var sheet schema.SalarySheet
	status = call(t, http.MethodGet, server.URL+"/employee/salary-sheet?centerId=c1&month=2025-03&page=1&limit=1", access, nil, &sheet)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, sheet.Sheet, 1)
	assert.Equal(t, 2, sheet.TotalPages)
}

func TestService_Leaves(t *testing.T) {
	server := newTestServer()
	defer server.Close()
	access, _, err := server.IssueTokens("admin@clinic.test")
	require.NoError(t, err)

	leave := &schema.Leave{LeaveType: "Sick", Reason: "flu", StartDate: "2025-03-01", EndDate: "2025-03-02", EmployeeID: "e1", CenterID: "c1"}
	status := call(t, http.MethodPost, server.URL+"/leave/add-Leave", access, leave, nil)
	require.Equal(t, http.StatusCreated, status)

	var list schema.LeaveList
	status = call(t, http.MethodGet, server.URL+"/leave/all-leave/c1", access, nil, &list)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list.Data, 1)
	assert.Equal(t, schema.LeavePending, list.Data[0].Status)

	status = call(t, http.MethodPatch, server.URL+"/leave/update-leave/"+list.Data[0].ID, access, &schema.LeaveStatusUpdate{Status: "Maybe"}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	status = call(t, http.MethodPatch, server.URL+"/leave/update-leave/"+list.Data[0].ID, access, &schema.LeaveStatusUpdate{Status: schema.LeaveApproved}, nil)
	require.Equal(t, http.StatusOK, status)
	stored, _ := server.Leave(list.Data[0].ID)
	assert.Equal(t, schema.LeaveApproved, stored.Status)
}

func TestService_ProfileOverride(t *testing.T) {
	server := newTestServer()
	defer server.Close()
	server.ProfileHandler = func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusTeapot, "overridden")
	}
	access, _, err := server.IssueTokens("admin@clinic.test")
	require.NoError(t, err)
	status := call(t, http.MethodGet, server.URL+"/users/profile", access, nil, nil)
	assert.Equal(t, http.StatusTeapot, status)
}

func TestService_Metrics(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	call(t, http.MethodGet, server.URL+"/users/profile", "", nil, nil)
	call(t, http.MethodPost, server.URL+"/users/login", "", &schema.LoginRequest{Email: "admin@clinic.test", Password: "secret"}, nil)

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(data), `clinic_mock_requests_total{method="GET",status="401"} 1`)
	assert.Contains(t, string(data), `clinic_mock_requests_total{method="POST",status="200"} 1`)
}

func TestService_Recoverer(t *testing.T) {
	server := newTestServer()
	defer server.Close()
	server.LoginHandler = func(w http.ResponseWriter, r *http.Request) {
		panic("broken handler")
	}
	var result schema.Result
	status := call(t, http.MethodPost, server.URL+"/users/login", "", &schema.LoginRequest{}, &result)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Server error", result.Message)
}
