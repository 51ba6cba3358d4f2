package kdtree_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/amonks/genremap/kdtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bruteForce(points []kdtree.Point, q kdtree.Point, k int, skip func(int) bool) []kdtree.Neighbor {
	var all []kdtree.Neighbor
	for i, p := range points {
		if skip != nil && skip(i) {
			continue
		}
		all = append(all, kdtree.Neighbor{Index: i, Distance: q.Distance(p)})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Distance != all[j].Distance {
			return all[i].Distance < all[j].Distance
		}
		return all[i].Index < all[j].Index
	})
	if len(all) > k {
		all = all[:k]
	}
	return all
}

func TestNearestMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	points := make([]kdtree.Point, 500)
	for i := range points {
		// a coarse grid produces plenty of ties and duplicates
		points[i] = kdtree.Point{X: float64(rng.Intn(40)), Y: float64(rng.Intn(40))}
	}
	tree := kdtree.New(points)
	require.Equal(t, 500, tree.Len())

	for i, q := range points {
		skip := func(j int) bool { return j == i }
		for _, k := range []int{1, 3, 4, 10} {
			assert.Equal(t, bruteForce(points, q, k, skip), tree.Nearest(q, k, skip), "point %d, k=%d", i, k)
		}
	}
}

func TestNearestOnALine(t *testing.T) {
	points := []kdtree.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	tree := kdtree.New(points)

	got := tree.Nearest(points[2], 4, nil)
	assert.Equal(t, []kdtree.Neighbor{
		{Index: 2, Distance: 0},
		{Index: 1, Distance: 1},
		{Index: 3, Distance: 1},
		{Index: 0, Distance: 2},
	}, got)
}

func TestNearestFewerThanK(t *testing.T) {
	points := []kdtree.Point{{0, 0}, {5, 5}}
	tree := kdtree.New(points)
	got := tree.Nearest(kdtree.Point{}, 4, func(i int) bool { return i == 0 })
	assert.Equal(t, []kdtree.Neighbor{{Index: 1, Distance: points[0].Distance(points[1])}}, got)
}

func TestNearestDuplicates(t *testing.T) {
	points := []kdtree.Point{{1, 1}, {1, 1}, {1, 1}}
	tree := kdtree.New(points)
	got := tree.Nearest(points[1], 2, func(i int) bool { return i == 1 })
	assert.Equal(t, []kdtree.Neighbor{{Index: 0, Distance: 0}, {Index: 2, Distance: 0}}, got)
}

func TestNearestEmpty(t *testing.T) {
	assert.Empty(t, kdtree.New(nil).Nearest(kdtree.Point{}, 3, nil))
	assert.Empty(t, kdtree.New([]kdtree.Point{{0, 0}}).Nearest(kdtree.Point{}, 0, nil))
}

func TestNearestTieAtCutoff(t *testing.T) {
	// four points at the same distance from the origin; only the lowest
	// indices fit
	points := []kdtree.Point{{0, -1}, {1, 0}, {-1, 0}, {0, 1}}
	tree := kdtree.New(points)
	got := tree.Nearest(kdtree.Point{}, 2, nil)
	assert.Equal(t, []kdtree.Neighbor{{Index: 0, Distance: 1}, {Index: 1, Distance: 1}}, got)
}
