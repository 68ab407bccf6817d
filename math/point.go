package math

import (
	m "math"
)

// Point is a position in the route's planar frame, in meters.
type Point struct {
	X float64
	Y float64
	Z float64
}

func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

func Dot(ax float64, ay float64, bx float64, by float64) float64 {
	return (ax * bx) + (ay * by)
}

func (p Point) DistanceTo(end Point) float64 {
	dx := end.X - p.X
	dy := end.Y - p.Y
	dz := end.Z - p.Z
	return m.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (p Point) Subtract(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y, Z: p.Z - other.Z}
}

// HeadingDot projects pos relative to the segment prev->cur onto the segment
// direction. Positive means pos lies past cur along the segment direction.
func HeadingDot(prev Point, cur Point, pos Point) float64 {
	heading := cur.Subtract(prev)
	offset := pos.Subtract(cur)
	return Dot(heading.X, heading.Y, offset.X, offset.Y)
}
