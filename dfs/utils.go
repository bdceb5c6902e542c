// SPDX-License-Identifier: MIT

package dfs

import "strings"

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}

// canonical rotates the open loop ring to start at its smallest ID, picks
// the orientation whose second element is smaller, and closes it.
func canonical(ring []string) []string {
	n := len(ring)
	start := 0
	for i, v := range ring {
		if v < ring[start] {
			start = i
		}
	}

	out := make([]string, 0, n+1)
	next, prev := ring[(start+1)%n], ring[(start+n-1)%n]
	if next <= prev {
		for i := 0; i < n; i++ {
			out = append(out, ring[(start+i)%n])
		}
	} else {
		for i := 0; i < n; i++ {
			out = append(out, ring[(start-i+n)%n])
		}
	}

	return append(out, out[0])
}

// signature joins a loop into a comparable key. NUL cannot collide with
// separators embedded in frame names and sorts below every other byte, so
// keys order like the loops themselves.
func signature(loop []string) string { return strings.Join(loop, "\x00") }
