package cli

import (
	"encoding/json"
	"fmt"

	"github.com/viant/clinic/schema"
)

type EmployeesCommand struct {
	List      EmployeeListCommand      `command:"list" description:"list employees of your center"`
	Update    EmployeeUpdateCommand    `command:"update" description:"replace an employee record"`
	Delete    EmployeeDeleteCommand    `command:"delete" description:"delete an employee"`
	Dashboard EmployeeDashboardCommand `command:"dashboard" description:"show an employee with salary history"`
}

func (c *EmployeesCommand) bind(r *Runner) {
	c.List.runner = r
	c.Update.runner = r
	c.Delete.runner = r
	c.Dashboard.runner = r
}

type EmployeeListCommand struct {
	Name     string `long:"name" description:"name filter"`
	Position string `long:"position" description:"position filter"`
	runner   *Runner
}

func (c *EmployeeListCommand) Execute(_ []string) error {
	client, err := c.runner.Client()
	if err != nil {
		return err
	}
	employees, err := client.API.Employees.List(c.runner.ctx, schema.EmployeeFilter{Name: c.Name, Position: c.Position})
	if err != nil {
		return err
	}
	return c.runner.print(employees)
}

type employeeID struct {
	ID string `positional-arg-name:"id" description:"employee id"`
}

type EmployeeUpdateCommand struct {
	Data   string     `short:"d" long:"data" description:"employee JSON document" required:"true"`
	Args   employeeID `positional-args:"yes" required:"yes"`
	runner *Runner
}

func (c *EmployeeUpdateCommand) Execute(_ []string) error {
	employee := &schema.Employee{}
	if err := json.Unmarshal([]byte(c.Data), employee); err != nil {
		return fmt.Errorf("invalid employee document: %w", err)
	}
	client, err := c.runner.Client()
	if err != nil {
		return err
	}
	return client.API.Employees.Update(c.runner.ctx, c.Args.ID, employee)
}

type EmployeeDeleteCommand struct {
	Args   employeeID `positional-args:"yes" required:"yes"`
	runner *Runner
}

func (c *EmployeeDeleteCommand) Execute(_ []string) error {
	client, err := c.runner.Client()
	if err != nil {
		return err
	}
	return client.API.Employees.Delete(c.runner.ctx, c.Args.ID)
}

type EmployeeDashboardCommand struct {
	Args   employeeID `positional-args:"yes" required:"yes"`
	runner *Runner
}

func (c *EmployeeDashboardCommand) Execute(_ []string) error {
	client, err := c.runner.Client()
	if err != nil {
		return err
	}
	dashboard, err := client.API.Employees.Dashboard(c.runner.ctx, c.Args.ID)
	if err != nil {
		return err
	}
	return c.runner.print(dashboard)
}
