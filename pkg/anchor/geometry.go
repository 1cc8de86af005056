package anchor

import "math"

// =============================================================================
// Point - 3D Coordinate
// =============================================================================

// Point is a 3D coordinate in project length units.
type Point struct {
	X float64 `json:"x" toml:"x" bson:"x"`
	Y float64 `json:"y" toml:"y" bson:"y"`
	Z float64 `json:"z" toml:"z" bson:"z"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// PlanarDistance returns the horizontal (x,y) distance between p and q.
func (p Point) PlanarDistance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Distance returns the full 3D distance between p and q.
func (p Point) Distance(q Point) float64 {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// =============================================================================
// Wall Segment Helpers
// =============================================================================

// segment is one wall face between two consecutive outline points.
type segment struct {
	a, b    Point
	length  float64 // planar length
	tangent Point   // horizontal unit vector a→b, z = 0
	normal  Point   // horizontal outward unit normal, z = 0
}

// newSegment builds a segment between two outline points. For a
// counter-clockwise outline the right-hand perpendicular of the travel
// direction points away from the pit.
func newSegment(a, b Point) segment {
	s := segment{a: a, b: b}
	dx, dy := b.X-a.X, b.Y-a.Y
	s.length = math.Hypot(dx, dy)
	if s.length > 0 {
		s.tangent = Point{X: dx / s.length, Y: dy / s.length}
		s.normal = Point{X: dy / s.length, Y: -dx / s.length}
	}
	return s
}

// pointAt returns the plan-view point at parameter t ∈ [0,1] along the segment.
func (s segment) pointAt(t float64) Point {
	return Point{X: s.a.X + (s.b.X-s.a.X)*t, Y: s.a.Y + (s.b.Y-s.a.Y)*t}
}

// wallSegments decomposes the outline into its consecutive-pair segments.
func wallSegments(outline []Point) []segment {
	if len(outline) < 2 {
		return nil
	}
	segs := make([]segment, len(outline)-1)
	for i := 0; i < len(outline)-1; i++ {
		segs[i] = newSegment(outline[i], outline[i+1])
	}
	return segs
}

// inclinedDirection rotates an outward horizontal normal downward by the
// given inclination angle: direction = normal·cos(angle) − ẑ·sin(angle).
func inclinedDirection(normal Point, angleDeg float64) Point {
	rad := angleDeg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Point{X: normal.X * cos, Y: normal.Y * cos, Z: -sin}
}
