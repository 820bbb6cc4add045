// Package cmd holds shared startup helpers for service commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/louisbranch/studentadmin/internal/platform/config"
	"github.com/louisbranch/studentadmin/internal/platform/otel"
	"github.com/louisbranch/studentadmin/internal/platform/timeouts"
)

// ServiceWeb names the browser-facing service in telemetry resources.
const ServiceWeb = "web"

// Source is where a command reads its startup settings. A nil Environment
// means the process environment; a non-nil map replaces it entirely.
type Source struct {
	Flags       *flag.FlagSet
	Args        []string
	Environment map[string]string
}

// Load fills cfg from its env tags, then parses flags registered by bind so
// command-line values win over the environment.
func Load[T any](cfg *T, src Source, bind func(*flag.FlagSet, *T)) error {
	switch {
	case cfg == nil:
		return errors.New("config target is required")
	case src.Flags == nil:
		return errors.New("flag parser is required")
	}
	var err error
	if src.Environment == nil {
		err = config.ParseEnv(cfg)
	} else {
		err = config.ParseEnvFrom(cfg, src.Environment)
	}
	if err != nil {
		return err
	}
	if bind != nil {
		bind(src.Flags, cfg)
	}
	args := src.Args
	if args == nil {
		args = []string{}
	}
	return src.Flags.Parse(args)
}

// RunWithTelemetry installs tracing for service around run. Spans are flushed
// after run returns, bounded by the shutdown timeout.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) (err error) {
	service = strings.TrimSpace(service)
	var missing []error
	if service == "" {
		missing = append(missing, errors.New("service name is required"))
	}
	if run == nil {
		missing = append(missing, errors.New("run function is required"))
	}
	if ctx == nil {
		missing = append(missing, errors.New("context is required"))
	}
	if len(missing) > 0 {
		return errors.Join(missing...)
	}

	flush, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if flushErr := flush(flushCtx); flushErr != nil {
			log.Printf("otel shutdown service=%s err=%v", service, flushErr)
		}
	}()
	return run(ctx)
}
