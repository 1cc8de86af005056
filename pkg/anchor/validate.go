package anchor

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/xinfuwcx/tieback/pkg/errors"
)

// fieldValidator checks struct tags on config types (positive dimensions,
// known kinds). Structural cross-field rules are checked by hand below.
var fieldValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate rejects structurally invalid input before any geometry is built.
// It is a pure check with no side effects; nil means the config is usable.
//
// Structural failures, in check order:
//   - more than MaxLevels levels
//   - zero enabled levels
//   - two vertically adjacent enabled levels closer than the global
//     vertical spacing
//   - wall outline with fewer than 2 points, an open outline (first and
//     last point differ), or a zero-length outline segment
//
// Per-field range violations (non-positive lengths, unknown kinds) on
// enabled levels are reported as INVALID_CONFIG.
func Validate(cfg *Config) error {
	if len(cfg.Levels) > MaxLevels {
		return errors.New(errors.ErrCodeInvalidLevels,
			"too many support levels: %d (max %d)", len(cfg.Levels), MaxLevels)
	}

	enabled := cfg.EnabledLevels()
	if len(enabled) == 0 {
		return errors.New(errors.ErrCodeInvalidLevels, "no enabled support levels")
	}

	for i := 1; i < len(enabled); i++ {
		gap := enabled[i-1].Elevation - enabled[i].Elevation
		if gap < cfg.Constraints.VerticalSpacing {
			return errors.New(errors.ErrCodeInvalidSpacing,
				"levels %d and %d are %.2f apart, need at least %.2f vertical spacing",
				enabled[i-1].ID, enabled[i].ID, gap, cfg.Constraints.VerticalSpacing)
		}
	}

	outline := cfg.Wall.Outline
	if len(outline) < 2 {
		return errors.New(errors.ErrCodeInvalidOutline,
			"wall outline needs at least 2 points, got %d", len(outline))
	}
	if outline[0] != outline[len(outline)-1] {
		return errors.New(errors.ErrCodeInvalidOutline,
			"wall outline must close: first point (%.2f, %.2f) differs from last (%.2f, %.2f)",
			outline[0].X, outline[0].Y, outline[len(outline)-1].X, outline[len(outline)-1].Y)
	}
	for i := 1; i < len(outline); i++ {
		if outline[i] == outline[i-1] {
			return errors.New(errors.ErrCodeInvalidOutline,
				"wall outline repeats point %d, segment %d has zero length", i, i)
		}
	}

	if cfg.Strategy != "" && !ValidStrategies[cfg.Strategy] {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown layout strategy: %q", cfg.Strategy)
	}

	if err := fieldValidator.Struct(cfg.Constraints); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "global constraints")
	}
	if cfg.Constraints.MinSpacing > cfg.Constraints.MaxSpacing {
		return errors.New(errors.ErrCodeInvalidConfig,
			"min spacing %.2f exceeds max spacing %.2f",
			cfg.Constraints.MinSpacing, cfg.Constraints.MaxSpacing)
	}

	for _, lv := range enabled {
		if err := fieldValidator.Struct(lv); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "level %d", lv.ID)
		}
		if lv.Anchor.Kind == KindMulti && lv.Anchor.Segments < 2 {
			return errors.New(errors.ErrCodeInvalidConfig,
				"level %d: multi-segment anchors need at least 2 segments", lv.ID)
		}
	}

	return nil
}

// Warnings returns non-fatal design-practice findings for a config.
// These never block generation; the CLI and API surface them alongside
// the quality report.
func Warnings(cfg *Config) []string {
	var warns []string

	if w := errors.CheckWallThickness(cfg.Wall.Thickness); w != "" {
		warns = append(warns, w)
	}

	for _, lv := range cfg.EnabledLevels() {
		if w := errors.CheckInclination(lv.Anchor.AngleDeg); w != "" {
			warns = append(warns, fmt.Sprintf("level %d: %s", lv.ID, w))
		}
		if lv.Anchor.Spacing < cfg.Constraints.MinSpacing || lv.Anchor.Spacing > cfg.Constraints.MaxSpacing {
			warns = append(warns, fmt.Sprintf(
				"level %d: requested spacing %.2f outside global bounds [%.2f, %.2f], will be clamped",
				lv.ID, lv.Anchor.Spacing, cfg.Constraints.MinSpacing, cfg.Constraints.MaxSpacing))
		}
	}

	return warns
}
