package cmd

import (
	"context"
	"errors"
	"flag"
	"strings"
	"testing"
)

type testConfig struct {
	Address string `env:"CMD_TEST_ADDRESS" envDefault:"127.0.0.1:8080"`
	Mode    string `env:"CMD_TEST_MODE" envDefault:"server"`
}

func bindTestFlags(fs *flag.FlagSet, cfg *testConfig) {
	fs.StringVar(&cfg.Address, "address", cfg.Address, "address")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "mode")
}

func TestLoadReadsProcessEnvThenFlags(t *testing.T) {
	t.Setenv("CMD_TEST_ADDRESS", "env:9000")
	t.Setenv("CMD_TEST_MODE", "env-mode")

	var cfg testConfig
	err := Load(&cfg, Source{
		Flags: flag.NewFlagSet("test", flag.ContinueOnError),
		Args:  []string{"-address", "flag:9001"},
	}, bindTestFlags)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Address != "flag:9001" {
		t.Fatalf("Address = %q, want flag value", cfg.Address)
	}
	if cfg.Mode != "env-mode" {
		t.Fatalf("Mode = %q, want env value", cfg.Mode)
	}
}

func TestLoadUsesExplicitEnvironment(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	err := Load(&cfg, Source{
		Flags:       flag.NewFlagSet("test", flag.ContinueOnError),
		Environment: map[string]string{"CMD_TEST_MODE": "map-mode"},
	}, bindTestFlags)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Mode != "map-mode" {
		t.Fatalf("Mode = %q, want %q", cfg.Mode, "map-mode")
	}
	if cfg.Address != "127.0.0.1:8080" {
		t.Fatalf("Address = %q, want default", cfg.Address)
	}
}

func TestLoadRejectsMissingInputs(t *testing.T) {
	t.Parallel()

	if err := Load[testConfig](nil, Source{Flags: flag.NewFlagSet("test", flag.ContinueOnError)}, nil); err == nil {
		t.Fatal("expected nil target error")
	}
	var cfg testConfig
	if err := Load(&cfg, Source{}, bindTestFlags); err == nil {
		t.Fatal("expected nil flag parser error")
	}
}

func TestLoadReportsUnknownFlag(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	var cfg testConfig
	if err := Load(&cfg, Source{Flags: fs, Args: []string{"-nope"}, Environment: map[string]string{}}, bindTestFlags); err == nil {
		t.Fatal("expected unknown flag error")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	t.Parallel()

	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	err := RunWithTelemetry(context.Background(), " ", nil)
	if err == nil || !strings.Contains(err.Error(), "service name is required") || !strings.Contains(err.Error(), "run function is required") {
		t.Fatalf("err = %v, want both missing inputs reported", err)
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("STUDENTADMIN_OTEL_ENDPOINT", "")

	want := errors.New("boom")
	called := false
	err := RunWithTelemetry(context.Background(), ServiceWeb, func(context.Context) error {
		called = true
		return want
	})
	if !called {
		t.Fatal("expected run to be called")
	}
	if !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}
