package cli

import "github.com/viant/clinic"

type Options struct {
	Config string               `short:"c" long:"config" description:"configuration file, defaults to $CLINIC_CONFIG"`
	Env    string               `long:"env" description:"logging environment" choice:"local" choice:"dev" choice:"prod"`
	Client clinic.ClientOptions `group:"Client Options"`

	Login     LoginCommand     `command:"login" description:"log in and store credentials"`
	Logout    LogoutCommand    `command:"logout" description:"clear stored credentials"`
	Profile   ProfileCommand   `command:"profile" description:"show the authenticated user"`
	Refresh   RefreshCommand   `command:"refresh" description:"renew the access credential"`
	Call      CallCommand      `command:"call" description:"call an API path with the stored session"`
	Employees EmployeesCommand `command:"employees" description:"manage employees"`
	Leaves    LeavesCommand    `command:"leaves" description:"manage leave requests"`
	Salary    SalaryCommand    `command:"salary" description:"salary sheet, dues and payments"`
	Mock      MockCommand      `command:"mock" description:"serve the mock clinic API"`
}

func newOptions(r *Runner) *Options {
	ret := &Options{}
	ret.Login.runner = r
	ret.Logout.runner = r
	ret.Profile.runner = r
	ret.Refresh.runner = r
	ret.Call.runner = r
	ret.Employees.bind(r)
	ret.Leaves.bind(r)
	ret.Salary.bind(r)
	ret.Mock.runner = r
	return ret
}
