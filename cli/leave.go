package cli

import (
	"errors"

	"github.com/viant/clinic/schema"
)

type LeavesCommand struct {
	List   LeaveListCommand   `command:"list" description:"list leave requests of an employee or a center"`
	Add    LeaveAddCommand    `command:"add" description:"submit a leave request"`
	Status LeaveStatusCommand `command:"status" description:"approve or reject a leave request"`
}

func (c *LeavesCommand) bind(r *Runner) {
	c.List.runner = r
	c.Add.runner = r
	c.Status.runner = r
}

type LeaveListCommand struct {
	Employee string `long:"employee" description:"employee id"`
	Center   string `long:"center" description:"diagnostic center id"`
	Status   string `long:"status" description:"status filter" choice:"Pending" choice:"Approved" choice:"Rejected"`
	runner   *Runner
}

func (c *LeaveListCommand) Execute(_ []string) error {
	if (c.Employee == "") == (c.Center == "") {
		return errors.New("exactly one of --employee or --center is required")
	}
	client, err := c.runner.Client()
	if err != nil {
		return err
	}
	var leaves []*schema.Leave
	if c.Employee != "" {
		leaves, err = client.API.Leaves.ListByEmployee(c.runner.ctx, c.Employee)
	} else {
		leaves, err = client.API.Leaves.ListByCenter(c.runner.ctx, c.Center)
	}
	if err != nil {
		return err
	}
	return c.runner.print(schema.FilterLeaves(leaves, schema.LeaveStatus(c.Status)))
}

type LeaveAddCommand struct {
	Employee string `long:"employee" description:"employee id" required:"true"`
	Center   string `long:"center" description:"diagnostic center id" required:"true"`
	Type     string `long:"type" description:"leave type" required:"true"`
	Reason   string `long:"reason" description:"reason"`
	Start    string `long:"start" description:"first day, YYYY-MM-DD" required:"true"`
	End      string `long:"end" description:"last day, YYYY-MM-DD, defaults to start"`
	runner   *Runner
}

func (c *LeaveAddCommand) Execute(_ []string) error {
	leave := &schema.Leave{
		LeaveType:  c.Type,
		Reason:     c.Reason,
		StartDate:  c.Start,
		EndDate:    c.End,
		EmployeeID: c.Employee,
		CenterID:   c.Center,
	}
	if leave.EndDate == "" {
		leave.EndDate = leave.StartDate
	}
	client, err := c.runner.Client()
	if err != nil {
		return err
	}
	return client.API.Leaves.Add(c.runner.ctx, leave)
}

type LeaveStatusCommand struct {
	Args struct {
		ID     string `positional-arg-name:"id" description:"leave request id"`
		Status string `positional-arg-name:"status" description:"Approved, Rejected or Pending"`
	} `positional-args:"yes" required:"yes"`
	runner *Runner
}

func (c *LeaveStatusCommand) Execute(_ []string) error {
	client, err := c.runner.Client()
	if err != nil {
		return err
	}
	return client.API.Leaves.UpdateStatus(c.runner.ctx, c.Args.ID, schema.LeaveStatus(c.Args.Status))
}
