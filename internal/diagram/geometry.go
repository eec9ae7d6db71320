package diagram

import "github.com/Faultbox/ejection-angle/pkg/math"

// ArcPoints is the number of points in every arc polyline.
const ArcPoints = 72

// Proportions scales diagram distances by the origin radius.
type Proportions struct {
	Line  float32 // length of both direction lines
	Arc   float32 // radius of the connecting arc
	Label float32 // distance of the caption anchors
}

// DefaultProportions returns the stock multipliers.
func DefaultProportions() Proportions {
	return Proportions{Line: 5, Arc: 3, Label: 5}
}

func (p Proportions) valid() bool {
	return p.Line > 0 && p.Arc > 0 && p.Label > 0
}

// Line is a segment from the origin. Drawn is false for a line that is not
// part of the current phase; its points then collapse onto the origin.
type Line struct {
	From, To math.Vec3
	Drawn    bool
}

// Geometry is everything drawn for one frame.
type Geometry struct {
	Asymptote Line
	Periapsis Line
	Arc       []math.Vec3 // ArcPoints long, or nil when nothing is drawn
	ArcDrawn  bool
}

// Empty reports whether nothing is drawn.
func (g Geometry) Empty() bool {
	return !g.Asymptote.Drawn && !g.Periapsis.Drawn && !g.ArcDrawn
}

// Generate builds the geometry for frame f with the stock proportions.
func Generate(origin Origin, asymptote, periapsis math.Vec3, f Frame) Geometry {
	return DefaultProportions().Generate(origin, asymptote, periapsis, f)
}

// Generate builds the geometry for frame f. asymptote and periapsis must be
// unit vectors in the world frame.
func (p Proportions) Generate(origin Origin, asymptote, periapsis math.Vec3, f Frame) Geometry {
	center := origin.Position
	lineLength := origin.Radius * p.Line
	arcRadius := origin.Radius * p.Arc
	t := math.Clamp01(f.Fraction)

	switch f.Phase {
	case Hidden:
		return Geometry{}

	case LinesAppearing:
		return Geometry{
			Asymptote: ray(center, asymptote, math.Lerp(0, lineLength, t)),
			Periapsis: Line{From: center, To: center},
			Arc:       ArcPolyline(center, asymptote, asymptote, 0),
		}

	case ArcAppearing:
		partial := asymptote.Slerp(periapsis, t)
		return Geometry{
			Asymptote: ray(center, asymptote, lineLength),
			Periapsis: ray(center, partial, lineLength),
			Arc:       ArcPolyline(center, asymptote, partial, arcRadius),
			ArcDrawn:  true,
		}

	case FullPicture:
		return Geometry{
			Asymptote: ray(center, asymptote, lineLength),
			Periapsis: ray(center, periapsis, lineLength),
			Arc:       ArcPolyline(center, asymptote, periapsis, arcRadius),
			ArcDrawn:  true,
		}

	case Hiding:
		length := math.Lerp(lineLength, 0, t)
		return Geometry{
			Asymptote: ray(center, asymptote, length),
			Periapsis: ray(center, periapsis, length),
			Arc:       ArcPolyline(center, asymptote, periapsis, math.Lerp(arcRadius, 0, t)),
			ArcDrawn:  true,
		}
	}
	panic(unreachablePhase(f.Phase))
}

func ray(center, dir math.Vec3, length float32) Line {
	return Line{From: center, To: center.Add(dir.Scale(length)), Drawn: true}
}

// ArcPolyline samples the circular arc of the given radius around center
// from unit vector a to unit vector b. The result always has ArcPoints
// points, the first on a and the last on b.
func ArcPolyline(center, a, b math.Vec3, radius float32) []math.Vec3 {
	points := make([]math.Vec3, ArcPoints)
	for i := range points {
		t := float32(i) / float32(ArcPoints-1)
		points[i] = center.Add(a.Slerp(b, t).Scale(radius))
	}
	return points
}
