package mock

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/viant/clinic/schema"
)

func (s *Service) addLeave(w http.ResponseWriter, r *http.Request) {
	var leave schema.Leave
	if !readJSON(w, r, &leave) {
		return
	}
	if err := leave.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	leave.ID = uuid.NewString()
	leave.Status = schema.LeavePending
	s.leaves.Put(leave.ID, &leave)
	writeJSON(w, http.StatusCreated, &schema.Result{Success: true, Message: "Leave request submitted"})
}

func (s *Service) employeeLeaves(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.writeLeaves(w, func(leave *schema.Leave) bool { return leave.EmployeeID == id })
}

func (s *Service) centerLeaves(w http.ResponseWriter, r *http.Request) {
	centerID := chi.URLParam(r, "centerId")
	s.writeLeaves(w, func(leave *schema.Leave) bool { return leave.CenterID == centerID })
}

func (s *Service) writeLeaves(w http.ResponseWriter, match func(leave *schema.Leave) bool) {
	leaves := []*schema.Leave{}
	for _, leave := range s.leaves.Values() {
		if match(leave) {
			leaves = append(leaves, leave)
		}
	}
	sort.Slice(leaves, func(i, j int) bool { return leaves[i].StartDate < leaves[j].StartDate })
	writeJSON(w, http.StatusOK, &schema.LeaveList{Data: leaves})
}

func (s *Service) updateLeave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	leave, ok := s.leaves.Get(id)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Leave not found")
		return
	}
	var update schema.LeaveStatusUpdate
	if !readJSON(w, r, &update) {
		return
	}
	switch update.Status {
	case schema.LeaveApproved, schema.LeaveRejected, schema.LeavePending:
	default:
		writeMessage(w, http.StatusBadRequest, "Invalid status")
		return
	}
	updated := *leave
	updated.Status = update.Status
	s.leaves.Put(id, &updated)
	writeMessage(w, http.StatusOK, "Leave status updated")
}
