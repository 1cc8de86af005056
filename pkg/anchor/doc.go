// Package anchor generates multi-level ground-anchor and wale-beam support
// layouts for deep-excavation retaining walls.
//
// # Overview
//
// Given a wall's plan outline, per-level anchor and beam parameters, and
// global spacing constraints, the package produces the full set of anchor
// bars and connecting wale beams plus a quality report. It is a pure
// geometric-combinatorial computation: no meshing, no physics, no rendering.
//
// # Pipeline
//
// One Generate call runs, leaves first:
//
//  1. Config validation (structural errors abort with no partial output)
//  2. Level anchor generation: per enabled level and wall segment, evenly
//     spaced origins projected outward and downward by the inclination angle
//  3. Multi-segment decomposition into collinear sub-bars, when configured
//  4. Wale-beam generation, one beam per (level, segment)
//  5. Quality scan: same-level clashes, cross-level overlaps, spacing bounds,
//     a [0,1] stability heuristic, and recommendations
//  6. Optional single-pass spacing optimization
//  7. Statistics aggregation
//
// # Usage
//
//	cfg := anchor.DefaultConfig()
//	result, err := anchor.Generate(cfg)
//	if err != nil {
//	    // structural config error, no geometry was produced
//	}
//	fmt.Println(result.Stats.TotalAnchors, result.Quality.StabilityScore)
//
// # Determinism
//
// Generate is a pure function of its config: identical input yields
// bit-identical geometry. The package never logs; progress events are the
// pipeline layer's concern (see pkg/pipeline and pkg/observability).
package anchor
