package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

type CallCommand struct {
	Query []string `short:"q" long:"query" description:"query parameter key=value, repeatable"`
	Data  string   `short:"d" long:"data" description:"JSON request body"`
	Args  struct {
		Method string `positional-arg-name:"method" description:"HTTP method"`
		Path   string `positional-arg-name:"path" description:"API path relative to the base URL"`
	} `positional-args:"yes" required:"yes"`
	runner *Runner
}

func (c *CallCommand) Execute(_ []string) error {
	query := url.Values{}
	for _, pair := range c.Query {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid query parameter %q, expected key=value", pair)
		}
		query.Add(key, value)
	}
	var in interface{}
	if c.Data != "" {
		if !json.Valid([]byte(c.Data)) {
			return fmt.Errorf("invalid JSON body")
		}
		in = json.RawMessage(c.Data)
	}
	client, err := c.runner.Client()
	if err != nil {
		return err
	}
	var out json.RawMessage
	if err = client.API.Do(c.runner.ctx, strings.ToUpper(c.Args.Method), c.Args.Path, query, in, &out); err != nil {
		return err
	}
	if len(out) == 0 {
		return nil
	}
	return c.runner.print(out)
}
