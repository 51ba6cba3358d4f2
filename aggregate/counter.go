package aggregate

import "sort"

// A Counter counts occurrences of strings and remembers the order in which
// each one was first seen. The zero value is ready to use.
type Counter struct {
	counts map[string]int
	order  []string
}

// Add counts one occurrence of each key.
func (c *Counter) Add(keys ...string) {
	if c.counts == nil {
		c.counts = map[string]int{}
	}
	for _, k := range keys {
		if _, seen := c.counts[k]; !seen {
			c.order = append(c.order, k)
		}
		c.counts[k]++
	}
}

// Count returns the number of occurrences of key.
func (c *Counter) Count(key string) int { return c.counts[key] }

// Len returns the number of distinct keys.
func (c *Counter) Len() int { return len(c.order) }

// Total returns the number of occurrences of all keys.
func (c *Counter) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// A Count is one entry of a Counter.
type Count struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
}

// MostCommon returns the n most frequent keys, most frequent first. Keys with
// equal counts keep their first-seen order. n < 0 returns every key.
func (c *Counter) MostCommon(n int) []Count {
	all := make([]Count, len(c.order))
	for i, k := range c.order {
		all[i] = Count{k, c.counts[k]}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Count > all[j].Count })
	if n >= 0 && n < len(all) {
		all = all[:n]
	}
	return all
}

// Top returns the keys of MostCommon(n).
func (c *Counter) Top(n int) []string {
	common := c.MostCommon(n)
	keys := make([]string, len(common))
	for i, kc := range common {
		keys[i] = kc.Key
	}
	return keys
}
