// Package web parses web command flags and composes the HTTP service.
package web

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/studentadmin/internal/platform/cmd"
	"github.com/louisbranch/studentadmin/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string `env:"STUDENTADMIN_WEB_HTTP_ADDR"             envDefault:"localhost:8080"`
	StudentAPIBaseURL   string `env:"STUDENTADMIN_API_BASE_URL"              envDefault:"https://localhost:7140"`
	TokenSecret         string `env:"STUDENTADMIN_API_TOKEN_SECRET"`
	TokenIssuer         string `env:"STUDENTADMIN_API_TOKEN_ISSUER"          envDefault:"studentadmin-web"`
	TrustForwardedProto bool   `env:"STUDENTADMIN_WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
}

// ParseConfig parses the process environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	return load(entrypoint.Source{Flags: fs, Args: args})
}

// ParseConfigFromEnvironment parses an explicit environment map and flags into
// a Config. A nil map is treated as an empty environment.
func ParseConfigFromEnvironment(fs *flag.FlagSet, args []string, environment map[string]string) (Config, error) {
	if environment == nil {
		environment = map[string]string{}
	}
	return load(entrypoint.Source{Flags: fs, Args: args, Environment: environment})
}

func load(src entrypoint.Source) (Config, error) {
	var cfg Config
	if err := entrypoint.Load(&cfg, src, bindFlags); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.StudentAPIBaseURL, "api-base-url", cfg.StudentAPIBaseURL, "Student API base URL")
	fs.StringVar(&cfg.TokenIssuer, "api-token-issuer", cfg.TokenIssuer, "issuer claim for Student API bearer tokens")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "trust X-Forwarded-Proto for same-origin checks")
}

// Run starts the web server and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			StudentAPIBaseURL:   cfg.StudentAPIBaseURL,
			TokenSecret:         cfg.TokenSecret,
			TokenIssuer:         cfg.TokenIssuer,
			TrustForwardedProto: cfg.TrustForwardedProto,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
