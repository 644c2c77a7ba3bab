// SPDX-License-Identifier: MIT

package cluster

import (
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// Cluster is a set of term indices.
type Cluster struct {
	set *roaring.Bitmap
}

// New returns a cluster holding members. Negative indices panic.
func New(members ...int) *Cluster {
	c := &Cluster{set: roaring.New()}
	for _, m := range members {
		c.Add(m)
	}

	return c
}

// Add inserts term index i. Negative indices panic.
func (c *Cluster) Add(i int) {
	if i < 0 {
		panic("cluster: negative term index " + strconv.Itoa(i))
	}
	c.set.Add(uint32(i))
}

// Contains reports whether i is a member.
func (c *Cluster) Contains(i int) bool {
	return i >= 0 && c.set.Contains(uint32(i))
}

// Len returns the member count.
func (c *Cluster) Len() int { return int(c.set.GetCardinality()) }

// IsEmpty reports whether c has no members.
func (c *Cluster) IsEmpty() bool { return c.set.IsEmpty() }

// Members returns the members in ascending order.
func (c *Cluster) Members() []int {
	out := make([]int, 0, c.Len())
	it := c.set.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}

// Each calls fn for every member in ascending order.
func (c *Cluster) Each(fn func(i int)) {
	it := c.set.Iterator()
	for it.HasNext() {
		fn(int(it.Next()))
	}
}

// Union adds every member of other to c.
func (c *Cluster) Union(other *Cluster) { c.set.Or(other.set) }

// Intersect returns |c ∩ other|.
func (c *Cluster) Intersect(other *Cluster) int {
	return int(c.set.AndCardinality(other.set))
}

// Equal reports set equality.
func (c *Cluster) Equal(other *Cluster) bool { return c.set.Equals(other.set) }

// Clone returns an independent copy.
func (c *Cluster) Clone() *Cluster { return &Cluster{set: c.set.Clone()} }

// Key returns the canonical "i,j,k," form of the sorted members.
func (c *Cluster) Key() string {
	var sb strings.Builder
	c.Each(func(i int) {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(',')
	})

	return sb.String()
}

// String renders the members as "{i, j, k}".
func (c *Cluster) String() string {
	parts := make([]string, 0, c.Len())
	c.Each(func(i int) { parts = append(parts, strconv.Itoa(i)) })

	return "{" + strings.Join(parts, ", ") + "}"
}

// Dice returns the Dice coefficient 2|A∩B| / (|A|+|B|), or 0 when both
// clusters are empty.
func Dice(a, b *Cluster) float64 {
	total := a.Len() + b.Len()
	if total == 0 {
		return 0
	}

	return 2 * float64(a.Intersect(b)) / float64(total)
}
