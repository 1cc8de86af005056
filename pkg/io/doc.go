// Package io reads layout configurations and writes generated results.
//
// # Overview
//
// Configurations are authored as TOML (the primary format) or JSON; the
// decoder picks by file extension. Results are exported as indented JSON so
// downstream tooling and the HTTP API share one serialization.
//
// # Configuration Format
//
// A minimal TOML configuration:
//
//	name = "metro-station-pit"
//	strategy = "uniform"
//
//	[wall]
//	thickness = 0.8
//	outline = [
//	    {x = 0, y = 0}, {x = 40, y = 0}, {x = 40, y = 25},
//	    {x = 0, y = 25}, {x = 0, y = 0},
//	]
//
//	[constraints]
//	min_spacing = 1.5
//	max_spacing = 3.5
//	vertical_spacing = 1.8
//
//	[[levels]]
//	id = 1
//	elevation = -2.0
//	enabled = true
//	[levels.anchor]
//	length = 18.0
//	diameter = 0.15
//	angle_deg = 15.0
//	prestress = 300.0
//	spacing = 2.5
//	kind = "single"
//	[levels.beam]
//	width = 0.4
//	height = 0.6
//	material = "C30"
//
// Decoding performs no semantic validation; pass the config to
// anchor.Validate (or let anchor.Generate do it) before use.
//
// # Round Trips
//
// WriteResult and ReadResult preserve the full geometry, quality report,
// and statistics, so a result can be exported, stored, and re-rendered
// later without regeneration.
package io
