package app

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/autoatlas/autoatlas"
	"github.com/autoatlas/autoatlas/pkg/assets"
	"github.com/autoatlas/autoatlas/pkg/errors"
	"github.com/autoatlas/autoatlas/pkg/logging"
)

const testRecords = `{"category":"Model","url":"https://example.com/saab/900.html","brand":"Saab","name":"Saab 900","years":"1978-1998"}
`

func newTestApp(t *testing.T, config *Config) *App {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "data/ultimatespecs_complete_db.jsonl", []byte(testRecords), 0o644); err != nil {
		t.Fatal(err)
	}
	if config == nil {
		config = &Config{DataRoot: "data", LogOutput: "discard"}
	}
	app, err := New("1.0.0", "abc123", "2026-01-01", "test",
		WithFS(fs),
		WithConfig(config),
		WithLogger(logging.NewNopLogger()),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return app
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app := newTestApp(t, nil)

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2026-01-01" {
		t.Errorf("Date() = %s, want 2026-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
}

// TestApp_New_NilFS verifies invalid options are rejected.
func TestApp_New_NilFS(t *testing.T) {
	_, err := New("dev", "", "", "", WithFS(nil))
	if !errors.IsValidationError(err) {
		t.Errorf("New(WithFS(nil)) error = %v, want validation error", err)
	}
}

// TestApp_Client_Singleton verifies that Client() returns the same instance.
func TestApp_Client_Singleton(t *testing.T) {
	app := newTestApp(t, nil)

	c1, err := app.Client()
	if err != nil {
		t.Fatalf("Client() failed: %v", err)
	}
	c2, err := app.Client()
	if err != nil {
		t.Fatalf("Client() failed on second call: %v", err)
	}
	if c1 != c2 {
		t.Error("Client() returned different instances, expected singleton")
	}

	ix, err := c1.Index(context.Background())
	if err != nil {
		t.Fatalf("Index() failed: %v", err)
	}
	if _, ok := ix.Brand("saab"); !ok {
		t.Error("client did not read records from the configured data root")
	}
}

// TestApp_Client_ThreadSafe verifies concurrent Client() calls are safe.
func TestApp_Client_ThreadSafe(t *testing.T) {
	app := newTestApp(t, nil)

	const goroutines = 50
	var wg sync.WaitGroup
	results := make([]autoatlas.Client, goroutines)
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = app.Client()
		}(i)
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		if errs[i] != nil {
			t.Fatalf("goroutine %d: Client() failed: %v", i, errs[i])
		}
		if results[i] != results[0] {
			t.Fatalf("goroutine %d got a different instance", i)
		}
	}
}

// TestApp_Client_InvalidTierCount verifies client option errors surface.
func TestApp_Client_InvalidTierCount(t *testing.T) {
	app := newTestApp(t, &Config{DataRoot: "data", TierCount: 12})
	if _, err := app.Client(); err == nil {
		t.Fatal("Client() succeeded with tier count 12, want error")
	}
}

// TestApp_WithClient verifies an injected client is used.
func TestApp_WithClient(t *testing.T) {
	injected, err := autoatlas.New(autoatlas.WithFS(afero.NewMemMapFs()))
	if err != nil {
		t.Fatal(err)
	}
	app, err := New("dev", "", "", "", WithConfig(&Config{}), WithClient(injected))
	if err != nil {
		t.Fatal(err)
	}
	got, err := app.Client()
	if err != nil {
		t.Fatal(err)
	}
	if got != injected {
		t.Error("Client() did not return the injected client")
	}
}

// TestApp_Assets verifies asset config and the local fallback.
func TestApp_Assets(t *testing.T) {
	app := newTestApp(t, &Config{AssetMode: "cdn", AssetBaseURL: "https://cdn.example.com"})
	if got := app.Assets(); got.Mode != assets.ModeCDN {
		t.Errorf("Assets().Mode = %q, want cdn", got.Mode)
	}

	app = newTestApp(t, &Config{AssetMode: "bogus", AssetBaseURL: "https://cdn.example.com"})
	if got := app.Assets(); got.Mode != assets.ModeLocal || got.Base() != "" {
		t.Errorf("Assets() = %+v, want local fallback", got)
	}
}

// TestApp_ListenDefaults verifies listener settings come from config.
func TestApp_ListenDefaults(t *testing.T) {
	app := newTestApp(t, &Config{HTTPHost: "0.0.0.0", HTTPPort: 9000, AdminKey: "k"})
	host, port, key := app.ListenDefaults()
	if host != "0.0.0.0" || port != 9000 || key != "k" {
		t.Errorf("ListenDefaults() = %s, %d, %s", host, port, key)
	}
}

// TestApp_Execute runs commands through the root command.
func TestApp_Execute(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"version", []string{"version"}, false},
		{"brands json", []string{"brands", "-o", "json"}, false},
		{"brand detail", []string{"brands", "saab", "-o", "yaml"}, false},
		{"unknown brand", []string{"brands", "volvo", "-o", "json"}, true},
		{"bad format", []string{"brands", "-o", "xml"}, true},
		{"completion", []string{"completion", "fish"}, false},
		{"completion bad shell", []string{"completion", "csh"}, true},
		{"quiz unknown brand", []string{"quiz", "brand", "volvo"}, true},
		{"quiz bad mode", []string{"quiz", "brand", "saab", "--mode", "country"}, true},
		{"unknown command", []string{"frobnicate"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, nil)
			err := app.Execute(context.Background(), tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

// TestApp_Shutdown verifies shutdown is safe with and without a client.
func TestApp_Shutdown(t *testing.T) {
	app := newTestApp(t, nil)
	if err := app.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() without client: %v", err)
	}
	if _, err := app.Client(); err != nil {
		t.Fatal(err)
	}
	if err := app.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() with client: %v", err)
	}
}

// TestApp_Execute_SetsDefaultLogger verifies flags reach the package logger.
func TestApp_Execute_SetsDefaultLogger(t *testing.T) {
	original := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	app := newTestApp(t, nil)
	if err := app.Execute(context.Background(), []string{"version", "--log-level", "debug"}); err != nil {
		t.Fatal(err)
	}
	if got := logging.Default().GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("default logger level = %s, want debug", got)
	}
}

// TestExitCode verifies invalid input is distinguished from other failures.
func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", errors.NewValidationError("format", "xml", "unsupported"), 2},
		{"not found", errors.NewNotFoundError("brand", "volvo"), 1},
		{"plain", errors.New("boom"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
