package cli

import (
	"time"

	"github.com/viant/clinic/schema"
)

type SalaryCommand struct {
	Sheet SalarySheetCommand `command:"sheet" description:"show the salary sheet of a center"`
	Due   SalaryDueCommand   `command:"due" description:"show the unpaid salary of an employee"`
	Pay   SalaryPayCommand   `command:"pay" description:"pay a salary with a tokenized card"`
}

func (c *SalaryCommand) bind(r *Runner) {
	c.Sheet.runner = r
	c.Due.runner = r
	c.Pay.runner = r
}

type Period struct {
	Year  int `long:"year" description:"salary year, defaults to the current year"`
	Month int `long:"month" description:"salary month 1-12, defaults to the current month"`
}

func (p *Period) resolve(now time.Time) (int, int) {
	year, month := p.Year, p.Month
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	return year, month
}

type SalarySheetCommand struct {
	Center   string `long:"center" description:"diagnostic center id" required:"true"`
	Name     string `long:"name" description:"name filter"`
	Position string `long:"position" description:"position filter"`
	Month    string `long:"month" description:"month filter, YYYY-MM"`
	Page     int    `long:"page" default:"1" description:"page number"`
	Limit    int    `long:"limit" default:"10" description:"page size"`
	runner   *Runner
}

func (c *SalarySheetCommand) Execute(_ []string) error {
	client, err := c.runner.Client()
	if err != nil {
		return err
	}
	sheet, err := client.API.Salary.Sheet(c.runner.ctx, schema.SheetQuery{
		CenterID: c.Center,
		Name:     c.Name,
		Position: c.Position,
		Month:    c.Month,
		Page:     c.Page,
		Limit:    c.Limit,
	})
	if err != nil {
		return err
	}
	return c.runner.print(sheet)
}

type SalaryDueCommand struct {
	Employee string `long:"employee" description:"employee id" required:"true"`
	Period
	runner *Runner
}

func (c *SalaryDueCommand) Execute(_ []string) error {
	client, err := c.runner.Client()
	if err != nil {
		return err
	}
	year, month := c.resolve(time.Now())
	due, err := client.API.Salary.CheckDue(c.runner.ctx, c.Employee, year, month)
	if err != nil {
		return err
	}
	return c.runner.print(&schema.Due{DueAmount: due})
}

type SalaryPayCommand struct {
	Employee  string  `long:"employee" description:"employee id" required:"true"`
	Name      string  `long:"name" description:"employee name"`
	Center    string  `long:"center" description:"diagnostic center id"`
	Amount    float64 `long:"amount" description:"amount to pay" required:"true"`
	CardToken string  `long:"card-token" env:"CLINIC_CARD_TOKEN" description:"payment provider card token" required:"true"`
	Period
	runner *Runner
}

func (c *SalaryPayCommand) Execute(_ []string) error {
	client, err := c.runner.Client()
	if err != nil {
		return err
	}
	year, month := c.resolve(time.Now())
	payment := &schema.Payment{
		EmployeeID:  c.Employee,
		Name:        c.Name,
		Amount:      c.Amount,
		CenterID:    c.Center,
		StripeToken: c.CardToken,
		Year:        year,
		Month:       month,
	}
	if err = client.API.Salary.Pay(c.runner.ctx, payment); err != nil {
		return err
	}
	return c.runner.print(&schema.Result{Success: true, Message: "Salary paid"})
}
