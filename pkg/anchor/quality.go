package anchor

import "fmt"

// Cross-level clash thresholds: anchors on different levels closer than
// this vertically and horizontally may collide in the ground.
const (
	crossLevelVertical = 2.0
	crossLevelPlanar   = 1.0
)

// Spacing outside the global bounds by more than this relative margin is
// flagged by the quality scan.
const spacingMargin = 0.1

// Stability penalties per finding category. The score starts at 1.0 and is
// floored at 0.
const (
	penaltyInterference = 0.3
	penaltySpacing      = 0.2
	penaltyFewAnchors   = 0.1
)

// minAnchorTotal is the anchor count below which a layout is considered
// too sparse to stabilize a multi-level excavation.
const minAnchorTotal = 10

// assessQuality scans the full anchor set for same-level horizontal clashes,
// cross-level spatial overlaps, and spacings outside the global bounds, then
// derives the stability score and recommendations. It never fails; all
// findings come back as data.
func assessQuality(anchors []Anchor, c Constraints) Report {
	report := Report{
		Issues:          []Issue{},
		SpacingWarnings: []string{},
		Recommendations: []string{},
	}

	// Pairwise clash scan. Input is in generation order, so issue order is
	// deterministic.
	for i := 0; i < len(anchors); i++ {
		for j := i + 1; j < len(anchors); j++ {
			a, b := anchors[i], anchors[j]
			planar := a.Origin.PlanarDistance(b.Origin)

			if a.Level == b.Level {
				// Sub-bars of one decomposed anchor share an origin axis;
				// they are collinear by construction, not clashing.
				if a.Segment == b.Segment && a.Index == b.Index {
					continue
				}
				if planar < c.MinSpacing {
					report.Issues = append(report.Issues, Issue{
						Kind:     IssueSameLevel,
						AnchorA:  a.ID,
						AnchorB:  b.ID,
						Distance: planar,
					})
				}
				continue
			}

			vertical := abs(a.Origin.Z - b.Origin.Z)
			if vertical < crossLevelVertical && planar < crossLevelPlanar {
				report.Issues = append(report.Issues, Issue{
					Kind:     IssueCrossLevel,
					AnchorA:  a.ID,
					AnchorB:  b.ID,
					Distance: planar,
				})
			}
		}
	}

	report.SpacingWarnings = append(report.SpacingWarnings, scanSpacing(anchors, c)...)

	// Score and recommendations.
	score := 1.0
	if len(report.Issues) > 0 {
		score -= penaltyInterference
		report.Recommendations = append(report.Recommendations,
			"resolve anchor interference by increasing spacing or staggering levels")
	}
	if len(report.SpacingWarnings) > 0 {
		score -= penaltySpacing
		report.Recommendations = append(report.Recommendations,
			"review anchor spacing against the global bounds")
	}
	if len(anchors) < minAnchorTotal {
		score -= penaltyFewAnchors
		report.Recommendations = append(report.Recommendations,
			"layout has few anchors; verify the wall is adequately supported")
	}
	if score < 0 {
		score = 0
	}
	report.StabilityScore = score

	return report
}

// scanSpacing flags consecutive same-segment spacings more than 10% outside
// the global bounds. Anchors arrive sorted along each wall segment by
// construction.
func scanSpacing(anchors []Anchor, c Constraints) []string {
	var warns []string

	low := c.MinSpacing * (1 - spacingMargin)
	high := c.MaxSpacing * (1 + spacingMargin)

	// Only lead bars carry a wall position; trailing sub-bars of a
	// decomposed anchor run deep into the ground.
	prev := -1
	for i := range anchors {
		cur := anchors[i]
		if cur.SubBar > 1 {
			continue
		}
		if prev >= 0 && anchors[prev].Level == cur.Level && anchors[prev].Segment == cur.Segment {
			d := anchors[prev].Origin.PlanarDistance(cur.Origin)
			if d < low || d > high {
				warns = append(warns, fmt.Sprintf(
					"level %d segment %d: spacing %.2f between %s and %s outside [%.2f, %.2f]",
					cur.Level, cur.Segment, d, anchors[prev].ID, cur.ID, c.MinSpacing, c.MaxSpacing))
			}
		}
		prev = i
	}

	return warns
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
