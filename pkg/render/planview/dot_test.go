package planview

import (
	"strconv"
	"strings"
	"testing"

	"github.com/xinfuwcx/tieback/pkg/anchor"
)

func testResult(t *testing.T) (*anchor.Result, anchor.Config) {
	t.Helper()
	cfg := anchor.DefaultConfig()
	result, err := anchor.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return result, cfg
}

func TestToDOTStructure(t *testing.T) {
	result, cfg := testResult(t)

	dot := ToDOT(result, cfg.Wall, Options{})

	if !strings.HasPrefix(dot, "graph plan {") {
		t.Error("plan view must be an undirected graph")
	}
	if !strings.Contains(dot, "layout=\"neato\"") {
		t.Error("missing neato engine selection")
	}

	// Every anchor appears with a pinned position.
	for _, a := range result.Anchors {
		if !strings.Contains(dot, "\""+a.ID+"\"") {
			t.Fatalf("anchor %s missing from DOT", a.ID)
		}
	}
	for _, b := range result.Beams {
		if !strings.Contains(dot, "\""+b.ID+".s\"") {
			t.Fatalf("beam %s missing from DOT", b.ID)
		}
	}

	// Pinned positions use the bang suffix.
	if !strings.Contains(dot, "!\"") {
		t.Error("positions are not pinned")
	}
}

func TestToDOTWallOutline(t *testing.T) {
	result, cfg := testResult(t)

	dot := ToDOT(result, cfg.Wall, Options{})

	for i := range cfg.Wall.Outline {
		if !strings.Contains(dot, "\"wall."+strconv.Itoa(i)+"\"") {
			t.Fatalf("outline vertex %d missing", i)
		}
	}
	// Closed outline: as many wall edges as segments.
	if got, want := strings.Count(dot, "penwidth=3"), len(cfg.Wall.Outline)-1; got != want {
		t.Errorf("wall edges = %d, want %d", got, want)
	}
}

func TestToDOTDetailedLabels(t *testing.T) {
	result, cfg := testResult(t)

	plain := ToDOT(result, cfg.Wall, Options{})
	detailed := ToDOT(result, cfg.Wall, Options{Detailed: true})

	if strings.Contains(plain, "xlabel=") {
		t.Error("plain view should not label anchors")
	}
	if !strings.Contains(detailed, "xlabel=") {
		t.Error("detailed view should label anchors")
	}
}

func TestToDOTScale(t *testing.T) {
	result, cfg := testResult(t)

	small := ToDOT(result, cfg.Wall, Options{Scale: 1})
	big := ToDOT(result, cfg.Wall, Options{Scale: 10})

	if small == big {
		t.Error("scale must affect pinned positions")
	}
}

func TestToDOTIsDeterministic(t *testing.T) {
	result, cfg := testResult(t)

	if ToDOT(result, cfg.Wall, Options{}) != ToDOT(result, cfg.Wall, Options{}) {
		t.Error("identical input must yield identical DOT")
	}
}

func TestLevelColorCycles(t *testing.T) {
	if levelColor(1) == levelColor(2) {
		t.Error("adjacent levels must differ in color")
	}
	if levelColor(1) != levelColor(1+len(levelColors)) {
		t.Error("palette should cycle")
	}
	// Out-of-range ids fall back to the first color.
	if levelColor(0) != levelColor(1) {
		t.Error("non-positive level should use the first color")
	}
}
