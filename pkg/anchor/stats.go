package anchor

// buildStatistics aggregates counts, lengths, and an average-spacing estimate
// over the final anchor and beam lists. Pure aggregation, no failure modes.
func buildStatistics(anchors []Anchor, beams []Beam) Statistics {
	stats := Statistics{
		TotalAnchors:    len(anchors),
		TotalBeams:      len(beams),
		AnchorsPerLevel: make(map[int]int),
	}

	for _, a := range anchors {
		stats.AnchorsPerLevel[a.Level]++
		stats.TotalAnchorLength += a.Length
	}

	for _, b := range beams {
		stats.TotalBeamLength += b.Start.PlanarDistance(b.End)
	}

	// Average spacing over consecutive same-segment lead bars. Trailing
	// sub-bars sit deep in the ground, not on the wall, so only the first
	// bar of each placement counts toward spacing.
	var sum float64
	var pairs int
	prev := -1
	for i, a := range anchors {
		if a.SubBar > 1 {
			continue
		}
		if prev >= 0 && anchors[prev].Level == a.Level && anchors[prev].Segment == a.Segment {
			sum += anchors[prev].Origin.PlanarDistance(a.Origin)
			pairs++
		}
		prev = i
	}
	if pairs > 0 {
		stats.AverageSpacing = sum / float64(pairs)
	}

	return stats
}
