package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xinfuwcx/tieback/pkg/anchor"
	"github.com/xinfuwcx/tieback/pkg/errors"
	pkgio "github.com/xinfuwcx/tieback/pkg/io"
)

func TestRunValidateAcceptsDefaultConfig(t *testing.T) {
	if err := runValidate(context.Background(), writeTestConfig(t)); err != nil {
		t.Fatalf("runValidate() error: %v", err)
	}
}

func TestRunValidateRejectsBrokenOutline(t *testing.T) {
	cfg := anchor.DefaultConfig()
	cfg.Wall.Outline = cfg.Wall.Outline[:2] // not closed

	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := pkgio.WriteConfig(&cfg, path); err != nil {
		t.Fatal(err)
	}

	err := runValidate(context.Background(), path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.IsConfig(err) {
		t.Errorf("error should carry a config code, got %v", err)
	}
}

func TestRunValidateMissingFile(t *testing.T) {
	err := runValidate(context.Background(), filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.GetCode(err) != errors.ErrCodeFileNotFound {
		t.Errorf("code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}
