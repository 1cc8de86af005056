package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xinfuwcx/tieback/pkg/anchor"
	"github.com/xinfuwcx/tieback/pkg/cache"
	tiebackio "github.com/xinfuwcx/tieback/pkg/io"
	"github.com/xinfuwcx/tieback/pkg/observability"
)

func testConfig() *anchor.Config {
	cfg := anchor.DefaultConfig()
	cfg.Name = "pipeline-test"
	return &cfg
}

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pit.toml")
	if err := tiebackio.WriteConfig(testConfig(), path); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	return path
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{"Empty", Options{}, "config_path or config is required"},
		{"Both", Options{ConfigPath: "x.toml", Config: testConfig()}, "mutually exclusive"},
		{"BadFormat", Options{Config: testConfig(), Formats: []string{"docx"}}, "invalid format"},
		{"Valid", Options{Config: testConfig()}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateAndSetDefaults: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Config: testConfig()}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatJSON {
		t.Errorf("default formats = %v, want [json]", opts.Formats)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("default scale = %v", opts.Scale)
	}
	if opts.Logger == nil {
		t.Error("logger default not applied")
	}
}

func TestExecuteInlineConfig(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Config:  testConfig(),
		Formats: []string{FormatJSON, FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Layout == nil || len(result.Layout.Anchors) == 0 {
		t.Fatal("no layout generated")
	}
	if result.Stats.AnchorCount != len(result.Layout.Anchors) {
		t.Error("stats anchor count mismatch")
	}
	if len(result.Artifacts[FormatJSON]) == 0 {
		t.Error("json artifact missing")
	}
	if !strings.Contains(string(result.Artifacts[FormatDOT]), "graph plan") {
		t.Error("dot artifact missing or malformed")
	}
	if result.ConfigHash == "" {
		t.Error("config hash missing")
	}
}

func TestExecuteFromFile(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		ConfigPath: writeTestConfig(t),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Config.Name != "pipeline-test" {
		t.Errorf("config name = %q", result.Config.Name)
	}
}

func TestExecuteMissingConfigFile(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	_, err := runner.Execute(context.Background(), Options{
		ConfigPath: filepath.Join(t.TempDir(), "nope.toml"),
	})
	if err == nil {
		t.Fatal("expected load error")
	}
}

func TestExecuteLayoutCaching(t *testing.T) {
	c, err := cache.NewMemoryCache(64)
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil, nil)
	defer runner.Close()

	opts := Options{Config: testConfig(), Formats: []string{FormatJSON}}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.LayoutHit {
		t.Error("first run should miss the layout cache")
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.LayoutHit {
		t.Error("second run should hit the layout cache")
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the artifact cache")
	}

	// Refresh bypasses the cache read.
	opts.Refresh = true
	third, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("third Execute: %v", err)
	}
	if third.CacheInfo.LayoutHit {
		t.Error("refresh must bypass the layout cache")
	}
}

func TestExecuteInvalidConfig(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	cfg := testConfig()
	cfg.Wall.Outline = cfg.Wall.Outline[:1]

	_, err := runner.Execute(context.Background(), Options{Config: cfg})
	if err == nil {
		t.Fatal("expected generate error for invalid config")
	}
}

func TestExecuteOptimizeOverride(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	cfg := testConfig()
	if cfg.Flags.OptimizeSpacing {
		t.Fatal("test config should not opt into optimization")
	}

	result, err := runner.Execute(context.Background(), Options{Config: cfg, Optimize: true})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	// The caller's config must stay untouched.
	if cfg.Flags.OptimizeSpacing {
		t.Error("Execute mutated the input config")
	}
	if result.Layout == nil {
		t.Fatal("no layout")
	}
}

// recordingHooks counts validation events from the generate stage.
type recordingHooks struct {
	observability.NoopGenerationHooks
	starts    int
	completes int
	lastErr   error
}

func (h *recordingHooks) OnValidateStart(ctx context.Context, levelCount int) {
	h.starts++
}

func (h *recordingHooks) OnValidateComplete(ctx context.Context, d time.Duration, err error) {
	h.completes++
	h.lastErr = err
}

func TestExecuteFiresValidateHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetGenerationHooks(hooks)
	defer observability.Reset()

	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	if _, err := runner.Execute(context.Background(), Options{Config: testConfig()}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if hooks.starts != 1 || hooks.completes != 1 {
		t.Errorf("validate hooks fired %d/%d times, want 1/1", hooks.starts, hooks.completes)
	}
	if hooks.lastErr != nil {
		t.Errorf("validate hook saw error: %v", hooks.lastErr)
	}

	// Failed validation still completes the hook, carrying the error.
	broken := testConfig()
	broken.Wall.Outline = broken.Wall.Outline[:1]
	if _, err := runner.Execute(context.Background(), Options{Config: broken}); err == nil {
		t.Fatal("expected validation error")
	}
	if hooks.completes != 2 || hooks.lastErr == nil {
		t.Errorf("failed run: completes = %d, lastErr = %v", hooks.completes, hooks.lastErr)
	}
}

func TestConfigHash(t *testing.T) {
	cfg := testConfig()

	h1 := ConfigHash(cfg, Options{})
	h2 := ConfigHash(cfg, Options{})
	if h1 != h2 {
		t.Error("hash should be deterministic")
	}

	// Geometry-affecting options change the hash.
	if h1 == ConfigHash(cfg, Options{Optimize: true}) {
		t.Error("optimize flag should change the hash")
	}

	// Config changes change the hash.
	other := testConfig()
	other.Levels[0].Anchor.Length = 99
	if h1 == ConfigHash(other, Options{}) {
		t.Error("config change should change the hash")
	}

	// Render-only options do not.
	if h1 != ConfigHash(cfg, Options{Detailed: true, Scale: 5}) {
		t.Error("render options must not change the layout hash")
	}
}

func TestRenderDOTSkippedForJSONOnly(t *testing.T) {
	layout, err := anchor.Generate(*testConfig())
	if err != nil {
		t.Fatal(err)
	}

	artifacts, err := renderFormats(layout, testConfig(), Options{Formats: []string{FormatJSON}})
	if err != nil {
		t.Fatalf("renderFormats: %v", err)
	}
	if _, ok := artifacts[FormatDOT]; ok {
		t.Error("dot artifact should not be produced unless requested")
	}
}

func TestExportedArtifactRoundTrips(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{Config: testConfig()})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	path := filepath.Join(t.TempDir(), "layout.json")
	if err := os.WriteFile(path, result.Artifacts[FormatJSON], 0644); err != nil {
		t.Fatal(err)
	}
	imported, err := tiebackio.ImportResult(path)
	if err != nil {
		t.Fatalf("ImportResult: %v", err)
	}
	if len(imported.Anchors) != len(result.Layout.Anchors) {
		t.Error("artifact round trip lost anchors")
	}
}
