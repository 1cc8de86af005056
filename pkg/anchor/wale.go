package anchor

import "fmt"

// generateBeams builds one wale beam per wall segment for a level. Beam
// endpoints are the segment's outline points lifted to the level elevation;
// connected anchors are every anchor (or sub-bar) placed on that segment.
func generateBeams(lv Level, segs []segment, levelAnchors []Anchor) []Beam {
	beams := make([]Beam, len(segs))

	for si, s := range segs {
		start, end := s.a, s.b
		start.Z = lv.Elevation
		end.Z = lv.Elevation

		beam := Beam{
			ID:       fmt.Sprintf("L%d-S%d-W", lv.ID, si+1),
			Level:    lv.ID,
			Segment:  si + 1,
			Start:    start,
			End:      end,
			Width:    lv.Beam.Width,
			Height:   lv.Beam.Height,
			Material: lv.Beam.Material,
		}

		for _, a := range levelAnchors {
			if a.Segment == si+1 {
				beam.Anchors = append(beam.Anchors, a.ID)
			}
		}

		beams[si] = beam
	}

	return beams
}
