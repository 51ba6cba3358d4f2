// Package kdtree answers exact k-nearest-neighbor queries over a fixed set of
// points in the plane. It wraps gonum's kd-tree with index-aware results.
package kdtree

import (
	"container/heap"
	"math"
	"sort"

	gokd "gonum.org/v1/gonum/spatial/kdtree"
)

// A Point is a position in the plane.
type Point struct{ X, Y float64 }

// Distance is the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// entry is a Point tagged with its position in the slice given to New.
type entry struct {
	Point
	index int
}

func (e entry) Compare(c gokd.Comparable, d gokd.Dim) float64 {
	o := c.(entry)
	if d == 0 {
		return e.X - o.X
	}
	return e.Y - o.Y
}

func (e entry) Dims() int { return 2 }

// Distance is the squared Euclidean distance, as gonum expects.
func (e entry) Distance(c gokd.Comparable) float64 {
	o := c.(entry)
	dx, dy := e.X-o.X, e.Y-o.Y
	return dx*dx + dy*dy
}

type entries []entry

func (es entries) Index(i int) gokd.Comparable         { return es[i] }
func (es entries) Len() int                            { return len(es) }
func (es entries) Pivot(d gokd.Dim) int                { return plane{entries: es, Dim: d}.Pivot() }
func (es entries) Slice(start, end int) gokd.Interface { return es[start:end] }

type plane struct {
	gokd.Dim
	entries
}

func (p plane) Less(i, j int) bool {
	a, b := p.entries[i], p.entries[j]
	if p.Dim == 0 {
		return a.X < b.X
	}
	return a.Y < b.Y
}
func (p plane) Pivot() int                           { return gokd.Partition(p, gokd.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) gokd.SortSlicer { p.entries = p.entries[start:end]; return p }
func (p plane) Swap(i, j int)                        { p.entries[i], p.entries[j] = p.entries[j], p.entries[i] }

// A Tree indexes a fixed set of points. It is never modified after New, so
// it is safe to query concurrently.
type Tree struct {
	points []Point
	tree   *gokd.Tree
}

// New builds a tree over points. Results refer to points by their index in
// this slice.
func New(points []Point) *Tree {
	es := make(entries, len(points))
	for i, p := range points {
		es[i] = entry{Point: p, index: i}
	}
	return &Tree{
		points: append([]Point(nil), points...),
		tree:   gokd.New(es, false),
	}
}

// Len returns the number of indexed points.
func (t *Tree) Len() int { return len(t.points) }

// A Neighbor is a query result.
type Neighbor struct {
	Index    int
	Distance float64
}

// Nearest returns up to k indexed points closest to q, closest first. Points
// at equal distance are ordered by index. Points for which skip returns true
// are ignored; skip may be nil.
func (t *Tree) Nearest(q Point, k int, skip func(index int) bool) []Neighbor {
	if k <= 0 || t.tree.Root == nil {
		return nil
	}
	kp := newKeeper(k, skip)
	t.tree.NearestSet(kp, entry{Point: q, index: -1})

	var out []Neighbor
	for _, c := range kp.Heap {
		if c.Comparable == nil {
			continue
		}
		i := c.Comparable.(entry).index
		out = append(out, Neighbor{Index: i, Distance: q.Distance(t.points[i])})
	}
	sort.Slice(out, func(i, j int) bool { return worse(out[j], out[i]) })
	return out
}

// keeper retains the k best candidates, breaking distance ties by index so
// that results do not depend on the shape of the tree.
type keeper struct {
	gokd.Heap
	skip func(int) bool
}

func newKeeper(k int, skip func(int) bool) *keeper {
	kp := &keeper{Heap: make(gokd.Heap, 1, k+1), skip: skip}
	kp.Heap[0].Dist = math.Inf(1)
	return kp
}

func (kp *keeper) Keep(c gokd.ComparableDist) {
	if kp.skip != nil && kp.skip(c.Comparable.(entry).index) {
		return
	}
	if !ranksAfter(kp.Heap[0], c) {
		return
	}
	if len(kp.Heap) == cap(kp.Heap) {
		kp.Heap[0] = c
		heap.Fix(kp, 0)
		return
	}
	heap.Push(kp, c)
}

// Less keeps the worst candidate, or the sentinel, on top.
func (kp *keeper) Less(i, j int) bool { return ranksAfter(kp.Heap[i], kp.Heap[j]) }

// ranksAfter reports whether a is a worse candidate than b. The sentinel
// ranks after everything.
func ranksAfter(a, b gokd.ComparableDist) bool {
	switch {
	case a.Comparable == nil:
		return b.Comparable != nil
	case b.Comparable == nil:
		return false
	case a.Dist != b.Dist:
		return a.Dist > b.Dist
	}
	return a.Comparable.(entry).index > b.Comparable.(entry).index
}

// worse reports whether a ranks after b.
func worse(a, b Neighbor) bool {
	if a.Distance != b.Distance {
		return a.Distance > b.Distance
	}
	return a.Index > b.Index
}
