package dashboard

import "sort"

// counter tallies string occurrences while remembering first-seen order, so
// ranking ties resolve by when a value first appeared in the history.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) len() int { return len(c.order) }

type entry struct {
	key   string
	count int
}

// mostCommon returns entries ranked by count descending, first-seen order on
// ties. limit of zero means all entries.
func (c *counter) mostCommon(limit int) []entry {
	entries := make([]entry, 0, len(c.order))
	for _, k := range c.order {
		entries = append(entries, entry{key: k, count: c.counts[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].count > entries[j].count })
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
