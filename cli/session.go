package cli

import (
	"fmt"

	"github.com/viant/clinic/internal/redact"
)

type LoginCommand struct {
	Email    string `long:"email" description:"account e-mail" required:"true"`
	Password string `long:"password" env:"CLINIC_PASSWORD" description:"account password"`
	runner   *Runner
}

func (c *LoginCommand) Execute(_ []string) error {
	client, err := c.runner.Client()
	if err != nil {
		return err
	}
	user, err := client.Session.Login(c.runner.ctx, c.Email, c.Password)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.runner.stderr, "logged in as %v (%v)\n", redact.Email(user.Email), user.Role)
	return c.runner.print(user)
}

type LogoutCommand struct {
	runner *Runner
}

func (c *LogoutCommand) Execute(_ []string) error {
	client, err := c.runner.Client()
	if err != nil {
		return err
	}
	return client.Session.Logout(c.runner.ctx)
}

type ProfileCommand struct {
	runner *Runner
}

func (c *ProfileCommand) Execute(_ []string) error {
	client, err := c.runner.Client()
	if err != nil {
		return err
	}
	user, err := client.Session.CheckAuth(c.runner.ctx)
	if err != nil {
		return err
	}
	return c.runner.print(user)
}

type RefreshCommand struct {
	runner *Runner
}

func (c *RefreshCommand) Execute(_ []string) error {
	client, err := c.runner.Client()
	if err != nil {
		return err
	}
	return client.Session.Refresh(c.runner.ctx)
}
