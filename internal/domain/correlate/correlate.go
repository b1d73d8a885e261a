package correlate

import "strings"

// Package correlate implements best-effort matching of records across two
// collections that do not share a strict relational contract. Each side of a
// relationship exposes a Ref: the set of identifier candidates that may name
// the record (numeric id under several field-name variants, order number,
// national-ID, plate, ...). Two records are correlated iff their candidate
// sets intersect after string normalization, which tolerates numeric/string
// type drift in the source payloads.

// Ref is a set of normalized candidate identifiers for one record.
type Ref []string

// NewRef builds a Ref from raw candidate values. Empty and whitespace-only
// candidates are dropped; comparison is case-insensitive.
func NewRef(candidates ...string) Ref {
	r := make(Ref, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		k := Normalize(c)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		r = append(r, k)
	}
	return r
}

// Normalize maps a raw identifier to its comparison form.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Empty reports whether the record carries no usable identifier at all.
func (r Ref) Empty() bool { return len(r) == 0 }

// Merge returns the union of r and other.
func (r Ref) Merge(other Ref) Ref {
	all := make([]string, 0, len(r)+len(other))
	all = append(all, r...)
	all = append(all, other...)
	return NewRef(all...)
}

// Matches reports whether the two candidate sets intersect.
func (r Ref) Matches(other Ref) bool {
	if len(r) == 0 || len(other) == 0 {
		return false
	}
	for _, a := range r {
		for _, b := range other {
			if a == b {
				return true
			}
		}
	}
	return false
}

// Index is a lookup structure over a secondary collection, keyed by every
// candidate identifier of every record. Positions refer to the collection the
// index was built from.
type Index struct {
	byKey map[string][]int
	size  int
}

// NewIndex builds an Index over n records, asking keysOf for each record's
// candidate set.
func NewIndex(n int, keysOf func(i int) Ref) *Index {
	ix := &Index{byKey: make(map[string][]int), size: n}
	for i := 0; i < n; i++ {
		for _, k := range keysOf(i) {
			ix.byKey[k] = append(ix.byKey[k], i)
		}
	}
	return ix
}

// Size returns the number of records the index was built over.
func (ix *Index) Size() int { return ix.size }

// Match returns the positions of all indexed records whose candidate set
// intersects ref, in first-seen order and without duplicates. A nil index or
// an empty ref matches nothing.
func (ix *Index) Match(ref Ref) []int {
	if ix == nil || len(ref) == 0 {
		return nil
	}
	var out []int
	seen := make(map[int]struct{})
	for _, k := range ref {
		for _, pos := range ix.byKey[k] {
			if _, dup := seen[pos]; dup {
				continue
			}
			seen[pos] = struct{}{}
			out = append(out, pos)
		}
	}
	return out
}

// AnyMatch reports whether at least one indexed record correlates with ref.
func (ix *Index) AnyMatch(ref Ref) bool {
	if ix == nil || len(ref) == 0 {
		return false
	}
	for _, k := range ref {
		if len(ix.byKey[k]) > 0 {
			return true
		}
	}
	return false
}
