package schema

import "time"

// LeaveStatus is the review state of a leave request.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "Pending"
	LeaveApproved LeaveStatus = "Approved"
	LeaveRejected LeaveStatus = "Rejected"
)

// DateLayout is the calendar date format used by leave requests.
const DateLayout = "2006-01-02"

type (
	Leave struct {
		ID         string      `json:"_id,omitempty"`
		LeaveType  string      `json:"leaveType"`
		Reason     string      `json:"reason"`
		StartDate  string      `json:"startDate"`
		EndDate    string      `json:"endDate"`
		Status     LeaveStatus `json:"status,omitempty"`
		EmployeeID string      `json:"employeeId"`
		CenterID   string      `json:"centerId"`
	}

	LeaveList struct {
		Data []*Leave `json:"data"`
	}

	LeaveStatusUpdate struct {
		Status LeaveStatus `json:"status"`
	}
)

// Days returns the inclusive number of calendar days the leave spans, 0 when dates are invalid.
func (l *Leave) Days() int {
	start, err := parseDate(l.StartDate)
	if err != nil {
		return 0
	}
	end, err := parseDate(l.EndDate)
	if err != nil || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// Validate checks the fields a leave request must carry.
func (l *Leave) Validate() error {
	if l.LeaveType == "" {
		return &FieldError{Field: "leaveType"}
	}
	if l.EmployeeID == "" {
		return &FieldError{Field: "employeeId"}
	}
	if l.Days() == 0 {
		return &FieldError{Field: "endDate", Reason: "must not precede startDate"}
	}
	return nil
}

// FilterLeaves returns leaves with the given status; an empty status returns all.
func FilterLeaves(leaves []*Leave, status LeaveStatus) []*Leave {
	if status == "" {
		return leaves
	}
	var ret []*Leave
	for _, leave := range leaves {
		if leave.Status == status {
			ret = append(ret, leave)
		}
	}
	return ret
}

func parseDate(value string) (time.Time, error) {
	if len(value) > len(DateLayout) {
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			return t.Truncate(24 * time.Hour), nil
		}
	}
	return time.Parse(DateLayout, value)
}
