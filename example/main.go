// Command example renders a notification template and delivers it through
// the transports configured in the environment.
//
//	ALERTMAIL_TRANSPORT=smtp SMTP_HOST=localhost SMTP_PORT=1025 SMTP_TLS_MODE=plain \
//		go run ./example example/alert.md symbol=ETH price=4000
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dmitrymomot/alertmail"
	"github.com/dmitrymomot/alertmail/pkg/config"
	"github.com/dmitrymomot/alertmail/pkg/mailer"
	"github.com/dmitrymomot/alertmail/pkg/placeholder"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: example <template.md> [name=value ...]")
	}

	var cfg alertmail.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	log := alertmail.NewLogger(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	content, err := mailer.LoadContent(os.DirFS(filepath.Dir(args[0])), filepath.Base(args[0]))
	if err != nil {
		return err
	}
	// Environment overrides frontmatter for deploy-time routing.
	if err := config.Parse(&content); err != nil {
		return err
	}

	n, err := alertmail.NewNotifier(content, log)
	if err != nil {
		return err
	}

	vars, err := parseVars(args[1:])
	if err != nil {
		return err
	}
	for _, name := range placeholder.Names(n.Template()) {
		if _, ok := vars[name]; !ok {
			log.WarnContext(ctx, "template variable not provided", slog.String("name", name))
		}
	}

	d, cleanup, err := alertmail.NewDispatcher(ctx, cfg, log)
	defer func() { _ = cleanup() }()
	if err != nil {
		return err
	}

	return n.Notify(ctx, d, vars)
}

func parseVars(args []string) (map[string]string, error) {
	vars := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || !placeholder.IsValidName(name) {
			return nil, fmt.Errorf("invalid variable %q: want name=value", arg)
		}
		vars[name] = value
	}
	return vars, nil
}
