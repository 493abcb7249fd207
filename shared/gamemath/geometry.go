package gamemath

import "math"

// InvSqrt2 scales each axis of a diagonal step so diagonal speed matches cardinal speed.
var InvSqrt2 = 1.0 / math.Sqrt(2.0)

// Point is a position in projected (screen-ish) space.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// ScalePoint returns k * p.
func ScalePoint(k float64, p Point) Point {
	return p.Scale(k)
}

// Point3D is a world-space position. Y is height, X and Z span the ground plane.
type Point3D struct {
	X, Y, Z float64
}

// Project maps a world position onto the screen plane: height lifts the point up.
func (p Point3D) Project() Point {
	return Point{X: p.X, Y: p.Z - p.Y}
}

// AngleAround returns the angle of p seen from centre, in (-pi, pi].
func AngleAround(p, centre Point) float64 {
	return math.Atan2(p.Y-centre.Y, p.X-centre.X)
}

// MoveAngle moves p by distance along angle.
func MoveAngle(p Point, angle, distance float64) Point {
	return Point{
		X: p.X + math.Cos(angle)*distance,
		Y: p.Y + math.Sin(angle)*distance,
	}
}

// RotateAround rotates p about centre by angle radians.
func RotateAround(p, centre Point, angle float64) Point {
	return MoveAngle(centre, AngleAround(p, centre)+angle, Distance(p, centre))
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// MoveTowards moves p toward dest by exactly distance. It does not stop at dest.
func MoveTowards(p, dest Point, distance float64) Point {
	return MoveAngle(p, AngleAround(dest, p), distance)
}
