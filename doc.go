// Package clinic wires the authenticated client of the diagnostic-clinic API.
//
// NewClient builds, from ClientOptions, a credential store, the
// refreshing transport, the JSON API client with its resource services and
// the session service that logs users in and out. The options can be
// populated from CLI flags, a YAML/JSON file or environment variables.
//
// Example:
//
//	c, _ := clinic.NewClient(ctx, &clinic.ClientOptions{StoreURL: "~/.clinic/session.json"})
//	user, _ := c.Session.Login(ctx, email, password)
//	employees, _ := c.API.Employees.List(ctx, schema.EmployeeFilter{})
package clinic
