// Package bloom provides order-preserving string de-duplication backed by
// Bloom filters.
package bloom

import (
	"slices"

	"github.com/bits-and-blooms/bloom/v3"
)

// DefaultFalsePositiveRate is used by NewSet.
const DefaultFalsePositiveRate = 0.01

// Filter wraps a Bloom filter for string membership tests.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds s to the filter.
func (f *Filter) Add(s string) {
	f.f.AddString(s)
}

// Test returns true if s might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(s string) bool {
	return f.f.TestString(s)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// Set collects strings in first-occurrence order, dropping exact duplicates.
// The filter is the only membership index: a "definitely new" answer
// appends without looking at the collected items, and only a "maybe seen"
// answer is confirmed by comparing against them, so false positives never
// drop a value. A Set is not safe for concurrent use.
type Set struct {
	filter *Filter
	items  []string
}

// NewSet creates an empty Set sized for n expected items.
func NewSet(n uint) *Set {
	if n == 0 {
		n = 1
	}
	return &Set{
		filter: NewFilter(n, DefaultFalsePositiveRate),
		items:  make([]string, 0, n),
	}
}

// Add appends v unless it was added before. It reports whether v was new.
func (s *Set) Add(v string) bool {
	if s.filter.Test(v) && slices.Contains(s.items, v) {
		return false
	}
	s.filter.Add(v)
	s.items = append(s.items, v)
	return true
}

// Len returns the number of distinct items.
func (s *Set) Len() int {
	return len(s.items)
}

// Items returns the distinct items in first-occurrence order.
// The result is never nil.
func (s *Set) Items() []string {
	return slices.Clone(s.items)
}
