// Package bits provides small pure bit-extraction helpers and a named-flag
// table abstraction used throughout the mpdu decoder to turn integer magic
// numbers into named-flag views.
//
// Ported from _examples/original_source/radio/bits.py (bitmask, bitmask_list,
// bitmask_get, bitmask_set, leastx, midx, mostx).
package bits

import "fmt"

// Least returns the x least-significant bits of v.
func Least(x uint, v uint64) uint64 {
	return v & ((uint64(1) << x) - 1)
}

// Mid returns the x bits of v starting at bit s, left in place (not
// right-shifted). Callers that want the numeric value at bit 0 must shift
// the result by s themselves.
func Mid(s, x uint, v uint64) uint64 {
	return v & (((uint64(1) << x) - 1) << s)
}

// Most returns the bits of v at and above bit s, shifted down to bit 0.
func Most(s uint, v uint64) uint64 {
	return v >> s
}

// Table is a named-flag table: a set of names, each mapped to a single-bit
// (or occasionally multi-bit) mask. Tables are declared as package-level
// immutable data; the methods below are pure.
type Table map[string]uint64

// List returns the names in t whose mask is fully set in v, in the table's
// iteration order. When v == 0 the result is always empty.
func (t Table) List(v uint64) []string {
	if v == 0 {
		return []string{}
	}
	var names []string
	for name, mask := range t {
		if v&mask == mask {
			names = append(names, name)
		}
	}
	return names
}

// Map returns, for every name in t, whether its mask is set in v.
func (t Table) Map(v uint64) map[string]int {
	m := make(map[string]int, len(t))
	for name, mask := range t {
		m[name] = boolToInt(v&mask == mask)
	}
	return m
}

// Get returns 1 if the named flag is set in v, 0 otherwise. It returns an
// error if name is not defined in t.
func (t Table) Get(v uint64, name string) (int, error) {
	mask, ok := t[name]
	if !ok {
		return 0, fmt.Errorf("bits: unknown flag %q", name)
	}
	return boolToInt(v&mask == mask), nil
}

// Set returns v with the named flag OR'd in. It returns an error if name is
// not defined in t.
func (t Table) Set(v uint64, name string) (uint64, error) {
	mask, ok := t[name]
	if !ok {
		return 0, fmt.Errorf("bits: unknown flag %q", name)
	}
	return v | mask, nil
}

// Unset returns v with the named flag AND-NOT'd out. It returns an error if
// name is not defined in t.
func (t Table) Unset(v uint64, name string) (uint64, error) {
	mask, ok := t[name]
	if !ok {
		return 0, fmt.Errorf("bits: unknown flag %q", name)
	}
	return v &^ mask, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
