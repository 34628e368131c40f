package lattice

// Condenser is a Mutator that removes non-critical points from a path:
// any interior point whose incoming and outgoing segments head the same
// cardinal direction is dropped, leaving only the turning points.
//
// The zero value condenses without limit. Limit > 0 caps the number of
// removals in a single Mutate call.
type Condenser struct {
	// Limit caps removals per Mutate call; 0 means unlimited.
	Limit int
}

// FirstCandidate returns the first index at or after start whose point
// could be removed, without mutating anything. Useful for probing a path
// before committing to a removal, e.g. to reduce two paths in lock-step
// and stop both as soon as either runs out of removable points.
// Complexity: O(n) from start.
func (c *Condenser) FirstCandidate(start int, path PointPath) (int, bool) {
	for i := start; i+2 < path.Len(); i++ {
		p1, _ := path.Get(i)
		p2, _ := path.Get(i + 1)
		p3, _ := path.Get(i + 2)

		d1, ok1 := p1.CardinalTo(p2)
		d2, ok2 := p2.CardinalTo(p3)
		if ok1 && ok2 && d1 == d2 {
			return i + 1, true
		}
	}
	return 0, false
}

// Mutate scans the interior points of the path and removes every point
// that does not represent a direction change, re-examining the same index
// after each removal since its successor shifts into place. Paths shorter
// than 3 points have no interior point to test and are left untouched.
// Returns true if at least one point was removed.
// Complexity: O(n^2) worst case on slice-backed paths (each removal is
// O(n)); O(n) scans.
func (c *Condenser) Mutate(path PointPath) bool {
	if path.Len() < 3 {
		return false
	}

	removals := 0
	for i := 1; (c.Limit == 0 || removals < c.Limit) && i < path.Len()-1; {
		p1, _ := path.Get(i - 1)
		p2, _ := path.Get(i)
		p3, _ := path.Get(i + 1)

		d1, ok1 := p1.CardinalTo(p2)
		d2, ok2 := p2.CardinalTo(p3)
		if ok1 && ok2 && d1 == d2 {
			path.Remove(i)
			removals++
			continue
		}
		i++
	}

	return removals > 0
}
