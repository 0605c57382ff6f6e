package mock

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/viant/clinic/internal/collection"
	"github.com/viant/clinic/schema"
	"golang.org/x/crypto/bcrypt"
)

type account struct {
	user         *schema.User
	passwordHash []byte
}

// Service simulates the clinic API.
type Service struct {
	Secret    []byte
	AccessTTL time.Duration

	accounts      *collection.SyncMap[string, *account]
	refreshTokens *collection.SyncMap[string, string]
	revoked       *collection.SyncMap[string, bool]
	employees     *collection.SyncMap[string, *schema.Employee]
	leaves        *collection.SyncMap[string, *schema.Leave]
	payments      *collection.SyncMap[string, *schema.SalaryRecord]
	refreshCalls  int32
	now           func() time.Time
	logger        *slog.Logger
	registry      *prometheus.Registry
	requests      *prometheus.CounterVec

	LoginHandler   http.HandlerFunc
	RefreshHandler http.HandlerFunc
	ProfileHandler http.HandlerFunc
}

type Option func(*Service)

// WithAccessTTL sets the lifetime of issued access tokens
func WithAccessTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.AccessTTL = ttl
	}
}

// WithSecret sets the HS256 signing key
func WithSecret(secret []byte) Option {
	return func(s *Service) {
		s.Secret = secret
	}
}

// WithUser registers an account
func WithUser(user *schema.User, password string) Option {
	return func(s *Service) {
		if user.ID == "" {
			user.ID = uuid.NewString()
		}
		// bcrypt rejects passwords over 72 bytes; such an account never matches
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		s.accounts.Put(user.Email, &account{user: user, passwordHash: hash})
	}
}

// WithEmployee registers an employee record
func WithEmployee(employee *schema.Employee) Option {
	return func(s *Service) {
		if employee.ID == "" {
			employee.ID = uuid.NewString()
		}
		s.employees.Put(employee.ID, employee)
	}
}

// WithLeave registers a leave request
func WithLeave(leave *schema.Leave) Option {
	return func(s *Service) {
		if leave.ID == "" {
			leave.ID = uuid.NewString()
		}
		if leave.Status == "" {
			leave.Status = schema.LeavePending
		}
		s.leaves.Put(leave.ID, leave)
	}
}

// WithLogger sets the request logger, otherwise slog.Default is used
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the time source used for token expiry
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a mock clinic API.
func NewService(options ...Option) *Service {
	ret := &Service{
		Secret:        []byte("clinic-mock-secret"),
		AccessTTL:     15 * time.Minute,
		accounts:      collection.NewSyncMap[string, *account](),
		refreshTokens: collection.NewSyncMap[string, string](),
		revoked:       collection.NewSyncMap[string, bool](),
		employees:     collection.NewSyncMap[string, *schema.Employee](),
		leaves:        collection.NewSyncMap[string, *schema.Leave](),
		payments:      collection.NewSyncMap[string, *schema.SalaryRecord](),
		now:           time.Now,
		logger:        slog.Default(),
		registry:      prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "mock",
			Name:      "requests_total",
			Help:      "Requests served by the mock clinic API.",
		}, []string{"method", "status"}),
	}
	ret.registry.MustRegister(ret.requests)
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// IssueTokens creates a credential pair for a registered account, as a login would.
func (s *Service) IssueTokens(email string) (string, string, error) {
	acc, ok := s.accounts.Get(email)
	if !ok {
		return "", "", fmt.Errorf("unknown account %v", email)
	}
	access, err := s.createAccessToken(acc.user)
	if err != nil {
		return "", "", err
	}
	refresh := uuid.NewString()
	s.refreshTokens.Put(refresh, email)
	return access, refresh, nil
}

// RevokeAccess makes an access token fail authorization as if it expired.
func (s *Service) RevokeAccess(token string) {
	s.revoked.Put(token, true)
}

// RevokeRefresh makes a refresh token unusable.
func (s *Service) RevokeRefresh(token string) {
	s.refreshTokens.Delete(token)
}

// RefreshCalls returns the number of refresh endpoint calls served.
func (s *Service) RefreshCalls() int {
	return int(atomic.LoadInt32(&s.refreshCalls))
}

// Employee returns a stored employee.
func (s *Service) Employee(id string) (*schema.Employee, bool) {
	return s.employees.Get(id)
}

// Leave returns a stored leave request.
func (s *Service) Leave(id string) (*schema.Leave, bool) {
	return s.leaves.Get(id)
}

// Handler returns an http.Handler for all mock endpoints and /metrics.
func (s *Service) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(s.recoverer, s.logging)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	s.Register(router)
	return router
}
