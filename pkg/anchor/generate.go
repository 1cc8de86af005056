package anchor

import (
	"fmt"
	"math"
)

// GroutBondShare is the fraction of an anchor's length occupied by the
// bonded (grouted) zone, anchored at the far end of the bar.
const GroutBondShare = 0.4

// clampSpacing pulls a requested spacing into the global bounds.
func clampSpacing(requested float64, c Constraints) float64 {
	return math.Min(math.Max(requested, c.MinSpacing), c.MaxSpacing)
}

// anchorCount is the number of anchors a wall segment receives:
// max(1, floor(L/spacing)). The actual pitch becomes L/count so the
// distribution stays uniform with no leftover remainder at the segment end.
func anchorCount(segmentLength, spacing float64) int {
	if spacing <= 0 {
		return 1
	}
	n := int(math.Floor(segmentLength / spacing))
	if n < 1 {
		return 1
	}
	return n
}

// anchorID builds the deterministic id for an anchor: level, wall segment
// (1-based), and anchor index within the segment (1-based).
func anchorID(level, seg, idx int) string {
	return fmt.Sprintf("L%d-S%d-A%d", level, seg, idx)
}

// generateLevel places the anchors for one enabled level across every wall
// segment. Origins sit at the midpoints of the segment's uniform
// sub-intervals, offset outward by half the wall thickness at the level's
// elevation; directions dip below the horizontal outward normal by the
// configured inclination.
func generateLevel(lv Level, wall Wall, c Constraints, segs []segment) []Anchor {
	spacing := clampSpacing(lv.Anchor.Spacing, c)

	total := 0
	counts := make([]int, len(segs))
	for i, s := range segs {
		counts[i] = anchorCount(s.length, spacing)
		total += counts[i]
	}

	anchors := make([]Anchor, 0, total)
	halfWall := wall.Thickness / 2

	for si, s := range segs {
		n := counts[si]
		dir := inclinedDirection(s.normal, lv.Anchor.AngleDeg)
		for i := 0; i < n; i++ {
			// Midpoint of the i-th of n equal sub-intervals.
			t := (float64(i) + 0.5) / float64(n)
			origin := s.pointAt(t).Add(s.normal.Scale(halfWall))
			origin.Z = lv.Elevation

			a := Anchor{
				ID:        anchorID(lv.ID, si+1, i+1),
				Level:     lv.ID,
				Segment:   si + 1,
				Index:     i + 1,
				Origin:    origin,
				Dir:       dir,
				End:       origin.Add(dir.Scale(lv.Anchor.Length)),
				Length:    lv.Anchor.Length,
				Diameter:  lv.Anchor.Diameter,
				AngleDeg:  lv.Anchor.AngleDeg,
				Prestress: lv.Anchor.Prestress,
			}

			if lv.Anchor.GroutDiameter > 0 {
				a.Grout = &GroutZone{
					From:     a.Length * (1 - GroutBondShare),
					To:       a.Length,
					Diameter: lv.Anchor.GroutDiameter,
				}
			}

			anchors = append(anchors, a)
		}
	}

	return anchors
}
