package anchor

// Generate produces the complete anchor and wale-beam layout for a validated
// configuration.
//
// Sequence: validate → sort enabled levels top to bottom → per level:
// place anchors, decompose multi-segment bars, build wale beams → quality
// scan → optional spacing optimization → statistics. A validation failure
// aborts the call before any geometry exists; there are no partial results.
//
// The computation is deterministic: identical configs yield bit-identical
// output. It performs no I/O and emits no logs; progress reporting belongs
// to the pipeline layer.
func Generate(cfg Config) (*Result, error) {
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	levels := cfg.EnabledLevels()
	segs := wallSegments(cfg.Wall.Outline)

	// Pre-size from the per-segment count formula so the buffers never
	// reallocate.
	estimate := 0
	for _, lv := range levels {
		spacing := clampSpacing(lv.Anchor.Spacing, cfg.Constraints)
		per := 0
		for _, s := range segs {
			per += anchorCount(s.length, spacing)
		}
		if lv.Anchor.Kind == KindMulti && lv.Anchor.Segments > 1 {
			per *= lv.Anchor.Segments
		}
		estimate += per
	}

	anchors := make([]Anchor, 0, estimate)
	beams := make([]Beam, 0, len(levels)*len(segs))

	for _, lv := range levels {
		levelAnchors := generateLevel(lv, cfg.Wall, cfg.Constraints, segs)
		levelAnchors = decompose(levelAnchors, lv)
		anchors = append(anchors, levelAnchors...)
		beams = append(beams, generateBeams(lv, segs, levelAnchors)...)
	}

	quality := assessQuality(anchors, cfg.Constraints)

	if cfg.Flags.OptimizeSpacing {
		optimizeSpacing(anchors, &cfg)
	}

	result := &Result{
		Anchors: anchors,
		Beams:   beams,
		Stats:   buildStatistics(anchors, beams),
		Quality: quality,
	}

	return result, nil
}

// Optimize re-runs the spacing pass on an existing result, returning the
// number of adjusted anchors. The result's statistics are rebuilt; the
// quality report is not re-evaluated.
func Optimize(r *Result, cfg *Config) int {
	n := optimizeSpacing(r.Anchors, cfg)
	if n > 0 {
		r.Stats = buildStatistics(r.Anchors, r.Beams)
	}
	return n
}
