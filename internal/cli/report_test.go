package cli

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/xinfuwcx/tieback/pkg/anchor"
)

func TestRunReport(t *testing.T) {
	c := New(io.Discard, LogInfo)
	if err := c.runReport(context.Background(), writeTestConfig(t), true, false); err != nil {
		t.Fatalf("runReport() error: %v", err)
	}
}

func TestLevelTableListsAllLevels(t *testing.T) {
	cfg := anchor.DefaultConfig()
	layout, err := anchor.Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if len(layout.Levels()) != 6 {
		t.Fatalf("default config should enable 6 levels, got %d", len(layout.Levels()))
	}

	out := levelTable(layout, &cfg)
	if !strings.Contains(out, "Level") || !strings.Contains(out, "Anchors") {
		t.Error("table missing headers")
	}
	// Row count: header plus one line per level inside the border.
	if lines := strings.Count(out, "\n"); lines < len(layout.Levels()) {
		t.Errorf("table too short: %d lines", lines)
	}
}

func TestScoreStyleThresholds(t *testing.T) {
	if scoreStyle(0.9).GetForeground() != colorGreen {
		t.Error("high scores should be green")
	}
	if scoreStyle(0.6).GetForeground() != colorYellow {
		t.Error("middle scores should be amber")
	}
	if scoreStyle(0.2).GetForeground() != colorRed {
		t.Error("low scores should be red")
	}
}
