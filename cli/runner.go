package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/viant/clinic"
	"github.com/viant/clinic/internal/config"
	"github.com/viant/clinic/internal/logctx"
)

func Run(args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return New(os.Stdout, os.Stderr).Run(ctx, args)
}

// Runner executes one command line; commands share its config, logger and client.
type Runner struct {
	ctx     context.Context
	stdout  io.Writer
	stderr  io.Writer
	options *Options
	config  *config.Config
	logger  *slog.Logger
	client  *clinic.Client
}

func New(stdout, stderr io.Writer) *Runner {
	return &Runner{stdout: stdout, stderr: stderr, ctx: context.Background()}
}

func (r *Runner) Run(ctx context.Context, args []string) error {
	r.ctx = ctx
	r.options = newOptions(r)
	_, err := flags.ParseArgs(r.options, args)
	return err
}

func (r *Runner) init() error {
	if r.config != nil {
		return nil
	}
	cfg, err := config.Load(r.options.Config)
	if err != nil {
		return err
	}
	if r.options.Env != "" {
		cfg.Env = r.options.Env
	}
	r.config = cfg
	r.logger = setupLogger(cfg.Env, r.stderr)
	r.ctx = logctx.Into(r.ctx, r.logger)
	return nil
}

// Client returns the clinic client built from config overlaid with flags.
func (r *Runner) Client() (*clinic.Client, error) {
	if r.client != nil {
		return r.client, nil
	}
	if err := r.init(); err != nil {
		return nil, err
	}
	options := r.config.Client.Options()
	flagged := r.options.Client
	if flagged.BaseURL != "" {
		options.BaseURL = flagged.BaseURL
	}
	if flagged.RefreshPath != "" {
		options.RefreshPath = flagged.RefreshPath
	}
	if flagged.LoginPath != "" {
		options.LoginPath = flagged.LoginPath
	}
	if flagged.StoreURL != "" {
		options.StoreURL = flagged.StoreURL
	}
	if flagged.SecretKey != "" {
		options.SecretKey = flagged.SecretKey
	}
	options.Navigate = func(ctx context.Context, path string) {
		fmt.Fprintf(r.stderr, "session ended (%v), run: clinic login --email <email>\n", path)
	}
	client, err := clinic.NewClient(r.ctx, options)
	if err != nil {
		return nil, err
	}
	r.client = client
	return client, nil
}

func (r *Runner) print(value interface{}) error {
	if raw, ok := value.(json.RawMessage); ok {
		buffer := bytes.Buffer{}
		if err := json.Indent(&buffer, raw, "", "  "); err != nil {
			_, err = r.stdout.Write(raw)
			return err
		}
		buffer.WriteByte('\n')
		_, err := r.stdout.Write(buffer.Bytes())
		return err
	}
	encoder := json.NewEncoder(r.stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
