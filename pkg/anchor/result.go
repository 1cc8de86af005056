package anchor

import "sort"

// =============================================================================
// Generated Geometry
// =============================================================================

// GroutZone is the bonded interval of an anchor, measured as distances from
// the anchor origin along the bar.
type GroutZone struct {
	From     float64 `json:"from" bson:"from"`
	To       float64 `json:"to" bson:"to"`
	Diameter float64 `json:"diameter" bson:"diameter"`
}

// Anchor is one generated anchor bar or sub-bar.
//
// Invariants: Dir is unit length and End = Origin + Dir·Length.
type Anchor struct {
	ID        string     `json:"id" bson:"id"`
	Level     int        `json:"level" bson:"level"`
	Segment   int        `json:"segment" bson:"segment"`          // wall segment index, 1-based
	Index     int        `json:"index" bson:"index"`              // anchor index within the segment, 1-based
	SubBar    int        `json:"sub_bar,omitempty" bson:"sub_bar,omitempty"` // 1-based for multi-segment sub-bars, 0 otherwise
	Origin    Point      `json:"origin" bson:"origin"`
	Dir       Point      `json:"dir" bson:"dir"`
	End       Point      `json:"end" bson:"end"`
	Length    float64    `json:"length" bson:"length"`
	Diameter  float64    `json:"diameter" bson:"diameter"`
	AngleDeg  float64    `json:"angle_deg" bson:"angle_deg"`
	Prestress float64    `json:"prestress" bson:"prestress"`
	Grout     *GroutZone `json:"grout,omitempty" bson:"grout,omitempty"`
}

// Beam is one generated wale beam along a wall segment at a level elevation.
type Beam struct {
	ID       string   `json:"id" bson:"id"`
	Level    int      `json:"level" bson:"level"`
	Segment  int      `json:"segment" bson:"segment"`
	Start    Point    `json:"start" bson:"start"`
	End      Point    `json:"end" bson:"end"`
	Width    float64  `json:"width" bson:"width"`
	Height   float64  `json:"height" bson:"height"`
	Material string   `json:"material,omitempty" bson:"material,omitempty"`
	Anchors  []string `json:"anchors" bson:"anchors"` // ids of connected anchors
}

// =============================================================================
// Quality Report
// =============================================================================

// Issue kinds reported by the interference scan.
const (
	IssueSameLevel  = "same-level-clash"
	IssueCrossLevel = "cross-level-clash"
)

// Issue records two anchors placed closer than a safe clearance.
type Issue struct {
	Kind     string  `json:"kind" bson:"kind"`
	AnchorA  string  `json:"anchor_a" bson:"anchor_a"`
	AnchorB  string  `json:"anchor_b" bson:"anchor_b"`
	Distance float64 `json:"distance" bson:"distance"` // measured planar distance
}

// Report is the quality assessment of a generated layout. Findings are data,
// never errors: the caller decides whether to block downstream use.
type Report struct {
	Issues          []Issue  `json:"issues" bson:"issues"`
	SpacingWarnings []string `json:"spacing_warnings" bson:"spacing_warnings"`
	StabilityScore  float64  `json:"stability_score" bson:"stability_score"` // [0,1]
	Recommendations []string `json:"recommendations" bson:"recommendations"`
}

// =============================================================================
// Statistics
// =============================================================================

// Statistics aggregates counts and lengths over a generated layout.
type Statistics struct {
	TotalAnchors      int             `json:"total_anchors" bson:"total_anchors"`
	TotalBeams        int             `json:"total_beams" bson:"total_beams"`
	AnchorsPerLevel   map[int]int     `json:"anchors_per_level" bson:"anchors_per_level"`
	TotalAnchorLength float64         `json:"total_anchor_length" bson:"total_anchor_length"`
	TotalBeamLength   float64         `json:"total_beam_length" bson:"total_beam_length"` // planar
	AverageSpacing    float64         `json:"average_spacing" bson:"average_spacing"`
}

// =============================================================================
// Result
// =============================================================================

// Result is the complete output of one Generate call.
// Consumers must not mutate the geometry in place if they intend to re-run
// the optimizer on it later.
type Result struct {
	Anchors []Anchor   `json:"anchors" bson:"anchors"`
	Beams   []Beam     `json:"beams" bson:"beams"`
	Stats   Statistics `json:"stats" bson:"stats"`
	Quality Report     `json:"quality" bson:"quality"`
}

// AnchorsAt returns the anchors belonging to one level, in generation order.
func (r *Result) AnchorsAt(level int) []Anchor {
	var out []Anchor
	for _, a := range r.Anchors {
		if a.Level == level {
			out = append(out, a)
		}
	}
	return out
}

// Levels returns the distinct level ids present in the result, ascending.
func (r *Result) Levels() []int {
	seen := map[int]bool{}
	var out []int
	for _, a := range r.Anchors {
		if !seen[a.Level] {
			seen[a.Level] = true
			out = append(out, a.Level)
		}
	}
	sort.Ints(out)
	return out
}

// sortLevelsByElevation orders levels from top elevation to bottom.
// Ties break on level id so generation order stays deterministic.
func sortLevelsByElevation(levels []Level) {
	sort.SliceStable(levels, func(i, j int) bool {
		if levels[i].Elevation != levels[j].Elevation {
			return levels[i].Elevation > levels[j].Elevation
		}
		return levels[i].ID < levels[j].ID
	})
}
