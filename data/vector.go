package data

import (
	"math"
	"sort"
)

// A Vector maps feature names to values. Operations between two vectors only
// consider the features both of them have.
type Vector map[string]float64

func (v Vector) Distance(other Vector) float64 {
	var terms float64
	for k, a := range v {
		b, has := other[k]
		if !has {
			continue
		}
		terms += math.Pow(a-b, 2)
	}
	return math.Sqrt(terms)
}

func (v Vector) Delta(other Vector) Vector {
	delta := Vector{}
	for k, a := range v {
		b, has := other[k]
		if !has {
			continue
		}
		delta[k] = b - a
	}
	return delta
}

func (v Vector) Divide(scalar float64) Vector {
	result := make(Vector, len(v))
	for k, a := range v {
		result[k] = a / scalar
	}
	return result
}

func (v Vector) Multiply(scalar float64) Vector {
	result := make(Vector, len(v))
	for k, a := range v {
		result[k] = a * scalar
	}
	return result
}

func (v Vector) Add(delta Vector) Vector {
	result := make(Vector, len(v))
	for k, a := range v {
		result[k] = a + delta[k]
	}
	return result
}

// Path returns the points visited when walking from v along delta in equal
// steps. The last point is v+delta.
func (v Vector) Path(delta Vector, steps int) []Vector {
	if steps <= 0 {
		return nil
	}
	increment := delta.Divide(float64(steps))
	points := make([]Vector, steps)
	last := v
	for i := 0; i < steps; i++ {
		points[i] = last.Add(increment)
		last = points[i]
	}
	return points
}

// Only returns a copy of v restricted to the given keys. With no keys it
// returns a full copy.
func (v Vector) Only(keys ...string) Vector {
	result := make(Vector, len(v))
	if len(keys) == 0 {
		for k, a := range v {
			result[k] = a
		}
		return result
	}
	for _, k := range keys {
		if a, has := v[k]; has {
			result[k] = a
		}
	}
	return result
}

// Keys returns the feature names in v, sorted.
func (v Vector) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
