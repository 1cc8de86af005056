package anchor

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Anchor kinds.
const (
	// KindSingle is a one-piece anchor bar.
	KindSingle = "single"
	// KindMulti is an anchor decomposed into collinear sub-bars for
	// staged grouting or segmented tendons.
	KindMulti = "multi-segment"
)

// Layout strategies.
const (
	// StrategyUniform distributes anchors evenly along each wall segment.
	// It is the only strategy currently implemented.
	StrategyUniform = "uniform"
)

// MaxLevels is the maximum number of support levels a configuration may define.
const MaxLevels = 10

// ValidKinds is the set of supported anchor kinds.
var ValidKinds = map[string]bool{
	KindSingle: true,
	KindMulti:  true,
}

// ValidStrategies is the set of supported layout strategies.
var ValidStrategies = map[string]bool{
	StrategyUniform: true,
}

// =============================================================================
// Configuration Types
// =============================================================================

// Params describes the anchor design shared by all anchors on one level.
// Lengths and spacings are in project length units (meters), angles in
// degrees, prestress in kN.
type Params struct {
	Length        float64 `json:"length" toml:"length" validate:"gt=0"`
	Diameter      float64 `json:"diameter" toml:"diameter" validate:"gt=0"`
	AngleDeg      float64 `json:"angle_deg" toml:"angle_deg"`
	Prestress     float64 `json:"prestress" toml:"prestress" validate:"gte=0"`
	Spacing       float64 `json:"spacing" toml:"spacing" validate:"gt=0"`
	Kind          string  `json:"kind" toml:"kind" validate:"omitempty,oneof=single multi-segment"`
	Segments      int     `json:"segments,omitempty" toml:"segments" validate:"gte=0"`
	GroutDiameter float64 `json:"grout_diameter,omitempty" toml:"grout_diameter" validate:"gte=0"`
}

// BeamParams describes the wale beam design for one level.
type BeamParams struct {
	Width         float64 `json:"width" toml:"width" validate:"gt=0"`
	Height        float64 `json:"height" toml:"height" validate:"gt=0"`
	Length        float64 `json:"length,omitempty" toml:"length"`
	Material      string  `json:"material,omitempty" toml:"material"`
	Reinforcement string  `json:"reinforcement,omitempty" toml:"reinforcement"`
}

// Level is one of up to ten support levels down the wall face.
type Level struct {
	ID        int        `json:"id" toml:"id" validate:"min=1,max=10"`
	Elevation float64    `json:"elevation" toml:"elevation"`
	Anchor    Params     `json:"anchor" toml:"anchor"`
	Beam      BeamParams `json:"beam" toml:"beam"`
	Enabled   bool       `json:"enabled" toml:"enabled"`
	Stage     int        `json:"stage,omitempty" toml:"stage"` // construction stage, 0 = unstaged
}

// Constraints are the global spacing rules applied across all levels.
type Constraints struct {
	MinSpacing      float64 `json:"min_spacing" toml:"min_spacing" validate:"gt=0"`
	MaxSpacing      float64 `json:"max_spacing" toml:"max_spacing" validate:"gt=0"`
	VerticalSpacing float64 `json:"vertical_spacing" toml:"vertical_spacing" validate:"gt=0"`
	// WallClearance is carried for downstream structural modules (drill rig
	// standoff); the generator itself offsets anchors by half the wall
	// thickness only.
	WallClearance float64 `json:"wall_clearance" toml:"wall_clearance" validate:"gte=0"`
}

// Wall describes the retaining wall the anchors support.
// The outline is a closed plan-view polyline ordered counter-clockwise;
// outward normals point away from the excavation pit.
type Wall struct {
	Outline         []Point `json:"outline" toml:"outline"`
	Thickness       float64 `json:"thickness" toml:"thickness" validate:"gt=0"`
	TopElevation    float64 `json:"top_elevation" toml:"top_elevation"`
	BottomElevation float64 `json:"bottom_elevation" toml:"bottom_elevation"`
}

// Flags are the quality-control switches.
type Flags struct {
	// OptimizeSpacing enables the single-pass spacing smoothing after the
	// quality scan. The pass is best-effort and does not guarantee that all
	// spacings end inside the global bounds.
	OptimizeSpacing bool `json:"optimize_spacing" toml:"optimize_spacing"`
}

// Config is the whole-system input: an immutable description from which one
// Generate call produces a complete layout. Configs do not persist state
// between calls.
type Config struct {
	Name        string      `json:"name,omitempty" toml:"name"`
	Levels      []Level     `json:"levels" toml:"levels"`
	Constraints Constraints `json:"constraints" toml:"constraints"`
	Wall        Wall        `json:"wall" toml:"wall"`
	Strategy    string      `json:"strategy,omitempty" toml:"strategy" validate:"omitempty,oneof=uniform"`
	Flags       Flags       `json:"flags" toml:"flags"`
}

// EnabledLevels returns the enabled levels sorted from top elevation to
// bottom, the order in which geometry is generated.
func (c *Config) EnabledLevels() []Level {
	levels := make([]Level, 0, len(c.Levels))
	for _, lv := range c.Levels {
		if lv.Enabled {
			levels = append(levels, lv)
		}
	}
	sortLevelsByElevation(levels)
	return levels
}

// SegmentCount returns the number of wall segments in the outline.
func (c *Config) SegmentCount() int {
	if len(c.Wall.Outline) < 2 {
		return 0
	}
	return len(c.Wall.Outline) - 1
}
