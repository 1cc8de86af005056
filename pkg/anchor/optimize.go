package anchor

// Optimizer tuning. A single smoothing pass nudges interior anchors toward
// the target pitch; it is not an iterative solver and may leave spacings
// outside the global bounds.
const (
	optimizeStep      = 0.3 // fraction of the spacing deficit applied per pass
	optimizeTolerance = 0.1 // deviation below which an anchor is left alone
)

// optimizeSpacing runs the best-effort spacing pass over the anchor set in
// place. Per level and wall segment, each interior anchor whose gap to either
// neighbor deviates from the target spacing (the midpoint of the global
// bounds) by more than the tolerance slides along the wall by 30% of the gap
// imbalance; its end point is recomputed from the unchanged direction and
// length. Sub-bars of a decomposed anchor move together.
//
// Returns the number of anchor positions adjusted.
func optimizeSpacing(anchors []Anchor, cfg *Config) int {
	segs := wallSegments(cfg.Wall.Outline)
	target := (cfg.Constraints.MinSpacing + cfg.Constraints.MaxSpacing) / 2

	// Group indices of the lead sub-bar (or the bar itself) per
	// (level, segment), in placement order.
	type runKey struct{ level, seg int }
	runs := map[runKey][]int{}
	var order []runKey
	for i, a := range anchors {
		if a.SubBar > 1 {
			continue // only the first sub-bar carries the plan position
		}
		k := runKey{a.Level, a.Segment}
		if _, ok := runs[k]; !ok {
			order = append(order, k)
		}
		runs[k] = append(runs[k], i)
	}

	adjusted := 0
	for _, k := range order {
		idxs := runs[k]
		if len(idxs) < 3 || k.seg < 1 || k.seg > len(segs) {
			continue
		}
		tangent := segs[k.seg-1].tangent

		for r := 1; r < len(idxs)-1; r++ {
			cur := idxs[r]
			prev := idxs[r-1]
			next := idxs[r+1]

			dPrev := anchors[cur].Origin.PlanarDistance(anchors[prev].Origin)
			dNext := anchors[next].Origin.PlanarDistance(anchors[cur].Origin)

			if abs(dPrev-target) <= optimizeTolerance && abs(dNext-target) <= optimizeTolerance {
				continue
			}

			// Positive shift moves the anchor toward the wider gap.
			shift := optimizeStep * (dNext - dPrev) / 2
			if shift == 0 {
				continue
			}

			delta := tangent.Scale(shift)
			shiftAnchor(anchors, anchors[cur], delta)
			adjusted++
		}
	}

	return adjusted
}

// shiftAnchor translates every bar sharing the given anchor's placement
// (the anchor and its sibling sub-bars) and recomputes their end points.
func shiftAnchor(anchors []Anchor, ref Anchor, delta Point) {
	for i := range anchors {
		a := &anchors[i]
		if a.Level != ref.Level || a.Segment != ref.Segment || a.Index != ref.Index {
			continue
		}
		a.Origin = a.Origin.Add(delta)
		a.End = a.Origin.Add(a.Dir.Scale(a.Length))
	}
}
