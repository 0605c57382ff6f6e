package mock

import (
	"net/http"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/viant/clinic/schema"
	"golang.org/x/crypto/bcrypt"
)

func (s *Service) login(w http.ResponseWriter, r *http.Request) {
	var request schema.LoginRequest
	if !readJSON(w, r, &request) {
		return
	}
	acc, ok := s.accounts.Get(request.Email)
	if !ok || bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(request.Password)) != nil {
		writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	access, err := s.createAccessToken(acc.user)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	refresh := uuid.NewString()
	s.refreshTokens.Put(refresh, acc.user.Email)
	writeJSON(w, http.StatusOK, &schema.LoginResponse{AccessToken: access, RefreshToken: refresh, User: acc.user})
}

func (s *Service) refresh(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt32(&s.refreshCalls, 1)
	var request schema.RefreshRequest
	if !readJSON(w, r, &request) {
		return
	}
	email, ok := s.refreshTokens.Get(request.Token)
	if !ok {
		writeMessage(w, http.StatusForbidden, "Invalid refresh token")
		return
	}
	acc, ok := s.accounts.Get(email)
	if !ok {
		writeMessage(w, http.StatusForbidden, "Invalid refresh token")
		return
	}
	access, err := s.createAccessToken(acc.user)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, &schema.RefreshResponse{AccessToken: access})
}

func (s *Service) profile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, &schema.ProfileResponse{User: currentUser(r)})
}
