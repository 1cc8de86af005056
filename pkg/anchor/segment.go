package anchor

import "fmt"

// decompose replaces every base anchor of a multi-segment level with N
// collinear sub-bars of equal length sharing the parent's direction. Sub-bar
// lengths sum exactly to the parent length (the last sub-bar absorbs any
// floating-point remainder) and sub-bars never reorder.
//
// Anchors of single-kind levels pass through unchanged.
func decompose(anchors []Anchor, lv Level) []Anchor {
	if lv.Anchor.Kind != KindMulti || lv.Anchor.Segments < 2 {
		return anchors
	}

	n := lv.Anchor.Segments
	out := make([]Anchor, 0, len(anchors)*n)

	for _, parent := range anchors {
		sub := parent.Length / float64(n)
		for k := 0; k < n; k++ {
			bar := parent
			bar.ID = fmt.Sprintf("%s-P%d", parent.ID, k+1)
			bar.SubBar = k + 1
			bar.Origin = parent.Origin.Add(parent.Dir.Scale(sub * float64(k)))
			bar.Length = sub
			if k == n-1 {
				// Absorb rounding so the sub-bars cover the parent exactly.
				bar.Length = parent.Length - sub*float64(n-1)
				bar.End = parent.End
			} else {
				bar.End = bar.Origin.Add(parent.Dir.Scale(bar.Length))
			}
			if parent.Grout != nil {
				bar.Grout = clipGrout(parent.Grout, sub*float64(k), sub*float64(k)+bar.Length)
			}
			out = append(out, bar)
		}
	}

	return out
}

// clipGrout intersects a parent grout zone with a sub-bar's [from, to)
// interval along the parent bar, re-expressed in the sub-bar's own
// coordinates. Returns nil when the sub-bar carries no bonded length.
func clipGrout(g *GroutZone, from, to float64) *GroutZone {
	lo := max(g.From, from)
	hi := min(g.To, to)
	if lo >= hi {
		return nil
	}
	return &GroutZone{From: lo - from, To: hi - from, Diameter: g.Diameter}
}
