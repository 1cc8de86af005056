package anchor

// Default global constraints, conservative values for a mid-depth pit.
const (
	DefaultMinSpacing      = 1.5
	DefaultMaxSpacing      = 3.5
	DefaultVerticalSpacing = 1.8
	DefaultWallClearance   = 0.5
)

// DefaultConfig returns a ready-to-run configuration: ten predefined support
// levels (the first six enabled) down a rectangular 40×25 m pit, with
// conservative global constraints. It always passes Validate and yields a
// non-empty anchor and beam list.
func DefaultConfig() Config {
	levels := make([]Level, MaxLevels)
	for i := range levels {
		id := i + 1
		levels[i] = Level{
			ID:        id,
			Elevation: -2.0 - float64(i)*2.0,
			Enabled:   id <= 6,
			Stage:     id,
			Anchor: Params{
				Length:        18.0 - float64(i), // shallower levels reach further
				Diameter:      0.15,
				AngleDeg:      15,
				Prestress:     300 + float64(i)*50,
				Spacing:       2.5,
				Kind:          KindSingle,
				GroutDiameter: 0.3,
			},
			Beam: BeamParams{
				Width:    0.4,
				Height:   0.6,
				Material: "C30",
			},
		}
	}

	return Config{
		Name:   "default",
		Levels: levels,
		Constraints: Constraints{
			MinSpacing:      DefaultMinSpacing,
			MaxSpacing:      DefaultMaxSpacing,
			VerticalSpacing: DefaultVerticalSpacing,
			WallClearance:   DefaultWallClearance,
		},
		Wall: Wall{
			Outline: []Point{
				{X: 0, Y: 0},
				{X: 40, Y: 0},
				{X: 40, Y: 25},
				{X: 0, Y: 25},
				{X: 0, Y: 0},
			},
			Thickness:       0.8,
			TopElevation:    0,
			BottomElevation: -22,
		},
		Strategy: StrategyUniform,
		Flags:    Flags{OptimizeSpacing: false},
	}
}
