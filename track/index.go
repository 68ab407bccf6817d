package track

import (
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"

	m "waypointd/math"
)

// SpatialIndex answers 1-nearest-neighbor queries over the route's 2D
// positions. Built once per route, immutable afterwards.
type SpatialIndex struct {
	tree *kdtree.Tree
}

func NewSpatialIndex(points []m.Point) *SpatialIndex {
	data := make(indexPoints, len(points))
	for i, p := range points {
		data[i] = indexPoint{x: p.X, y: p.Y, idx: i}
	}
	return &SpatialIndex{tree: kdtree.New(data, false)}
}

func (s *SpatialIndex) Nearest(x, y float64) int {
	got, _ := s.tree.Nearest(indexPoint{x: x, y: y})
	return got.(indexPoint).idx
}

// indexPoint carries the waypoint index alongside its 2D position so a
// query result can be mapped back onto the route.
type indexPoint struct {
	x, y float64
	idx  int
}

func (p indexPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(indexPoint)
	switch d {
	case 0:
		return p.x - q.x
	case 1:
		return p.y - q.y
	default:
		panic("track: illegal dimension")
	}
}

func (p indexPoint) Dims() int { return 2 }

func (p indexPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(indexPoint)
	dx := p.x - q.x
	dy := p.y - q.y
	return dx*dx + dy*dy
}

type indexPoints []indexPoint

func (p indexPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p indexPoints) Len() int                      { return len(p) }
func (p indexPoints) Pivot(d kdtree.Dim) int {
	return indexPlane{indexPoints: p, Dim: d}.Pivot()
}
func (p indexPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

type indexPlane struct {
	kdtree.Dim
	indexPoints
}

func (p indexPlane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.indexPoints[i].x < p.indexPoints[j].x
	case 1:
		return p.indexPoints[i].y < p.indexPoints[j].y
	default:
		panic("track: illegal dimension")
	}
}
func (p indexPlane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p indexPlane) Slice(start, end int) kdtree.SortSlicer {
	p.indexPoints = p.indexPoints[start:end]
	return p
}
func (p indexPlane) Swap(i, j int) {
	p.indexPoints[i], p.indexPoints[j] = p.indexPoints[j], p.indexPoints[i]
}

var (
	_ kdtree.Interface  = indexPoints(nil)
	_ kdtree.Comparable = indexPoint{}
	_ sort.Interface    = indexPlane{}
)
