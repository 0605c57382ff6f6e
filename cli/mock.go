package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/viant/clinic/client/mock"
	"github.com/viant/clinic/schema"
)

const demoCenter = "center-1"

type MockCommand struct {
	Addr      string        `short:"a" long:"addr" description:"listen address, defaults to config mock host:port"`
	AccessTTL time.Duration `long:"access-ttl" description:"access token lifetime"`
	Users     []string      `long:"user" description:"account email:password[:role], repeatable; a demo admin is added when none"`

	// Ready, when set, is called with the bound address once listening.
	Ready  func(addr string) `no-flag:"true"`
	runner *Runner
}

func (c *MockCommand) Execute(_ []string) error {
	r := c.runner
	if err := r.init(); err != nil {
		return err
	}
	options, err := c.serviceOptions()
	if err != nil {
		return err
	}
	service := mock.NewService(options...)
	addr := c.Addr
	if addr == "" {
		addr = r.config.Mock.Addr()
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %v: %w", addr, err)
	}
	server := &http.Server{Handler: service.Handler(), ReadHeaderTimeout: 10 * time.Second}
	r.logger.Info("mock clinic API started", slog.String("addr", listener.Addr().String()))
	if c.Ready != nil {
		c.Ready(listener.Addr().String())
	}
	errs := make(chan error, 1)
	go func() {
		errs <- server.Serve(listener)
	}()
	select {
	case err = <-errs:
	case <-r.ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = server.Shutdown(shutdownCtx)
	}
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	r.logger.Info("mock clinic API stopped")
	return err
}

func (c *MockCommand) serviceOptions() ([]mock.Option, error) {
	ttl := c.AccessTTL
	if ttl == 0 {
		ttl = c.runner.config.Mock.AccessTTL
	}
	options := []mock.Option{mock.WithAccessTTL(ttl), mock.WithLogger(c.runner.logger)}
	users := c.Users
	if len(users) == 0 {
		users = []string{"admin@clinic.local:admin:" + string(schema.RoleDiagnostic)}
		options = append(options,
			mock.WithEmployee(&schema.Employee{ID: "emp-1", Name: "Alice Moore", Position: "Nurse", Salary: 1200, CenterID: demoCenter}),
			mock.WithEmployee(&schema.Employee{ID: "emp-2", Name: "Brian Ortiz", Position: "Technician", Salary: 950, CenterID: demoCenter}),
		)
	}
	for _, spec := range users {
		user, password, err := parseAccount(spec)
		if err != nil {
			return nil, err
		}
		options = append(options, mock.WithUser(user, password))
	}
	return options, nil
}

func parseAccount(spec string) (*schema.User, string, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil, "", fmt.Errorf("invalid account %q, expected email:password[:role]", spec)
	}
	user := &schema.User{Email: parts[0], Role: schema.RoleDiagnostic, CenterID: demoCenter}
	if len(parts) == 3 && parts[2] != "" {
		user.Role = schema.Role(parts[2])
	}
	name, _, _ := strings.Cut(user.Email, "@")
	user.Name = name
	return user, parts[1], nil
}
