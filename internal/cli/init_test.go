package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xinfuwcx/tieback/pkg/anchor"
	pkgio "github.com/xinfuwcx/tieback/pkg/io"
)

func TestRunInitWritesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pit.toml")

	if err := runInit(path, "standard"); err != nil {
		t.Fatalf("runInit() error: %v", err)
	}

	cfg, err := pkgio.ReadConfig(path)
	if err != nil {
		t.Fatalf("written template does not parse: %v", err)
	}
	if err := anchor.Validate(cfg); err != nil {
		t.Errorf("template should validate: %v", err)
	}
}

func TestRunInitAllTemplatesValidate(t *testing.T) {
	for _, tmpl := range templates {
		cfg := tmpl.build()
		if err := anchor.Validate(&cfg); err != nil {
			t.Errorf("template %s invalid: %v", tmpl.name, err)
		}
	}
}

func TestRunInitUnknownTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pit.toml")
	if err := runInit(path, "bottomless"); err == nil {
		t.Fatal("expected error for unknown template")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be written on error")
	}
}

func TestRunInitRejectsHiddenFilename(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".pit.toml")
	if err := runInit(path, "standard"); err == nil {
		t.Fatal("expected error for hidden filename")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be written on error")
	}
}

func TestRunInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pit.toml")
	if err := os.WriteFile(path, []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runInit(path, "shallow"); err == nil {
		t.Fatal("expected error when file exists")
	}
}

func TestDeepTemplateUsesMultiSegment(t *testing.T) {
	cfg := deepTemplate()

	found := false
	for _, lv := range cfg.Levels {
		if lv.Enabled && lv.Elevation < -8 {
			if lv.Anchor.Kind != anchor.KindMulti {
				t.Errorf("level %d should be multi-segment", lv.ID)
			}
			found = true
		}
	}
	if !found {
		t.Fatal("deep template has no levels below -8 m")
	}
	if !cfg.Flags.OptimizeSpacing {
		t.Error("deep template should enable the optimizer")
	}
}

func TestTemplatePickerModel(t *testing.T) {
	m := newTemplateListModel(templates)
	if m.Selected != nil {
		t.Fatal("nothing should be selected initially")
	}
	if m.View() == "" {
		t.Error("view should render")
	}
}
