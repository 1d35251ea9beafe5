package datastructure

// PathPriority. priority of the best known path ending at CityID. Set == false is the empty value
// (no known path), it sorts below every real path.
type PathPriority struct {
	CityID       int32
	Length       uint64
	OldestRepair int32
	Set          bool
}

func NewPathPriority(cityID int32, length uint64, oldestRepair int32) PathPriority {
	return PathPriority{
		CityID:       cityID,
		Length:       length,
		OldestRepair: oldestRepair,
		Set:          true,
	}
}

func EmptyPriority() PathPriority {
	return PathPriority{}
}

/*
ComparePriority. return positive if a is better than b, negative if b is better, 0 on tie.

 1. non empty path beats empty path.
 2. shorter total length wins.
 3. on equal length, larger (more recent) oldest repair year wins.
*/
func ComparePriority(a, b PathPriority) int {
	if !a.Set && !b.Set {
		return 0
	}
	if !a.Set {
		return -1
	}
	if !b.Set {
		return 1
	}

	if a.Length != b.Length {
		if a.Length < b.Length {
			return 1
		}
		return -1
	}

	if a.OldestRepair != b.OldestRepair {
		if a.OldestRepair > b.OldestRepair {
			return 1
		}
		return -1
	}
	return 0
}

/*
PriorityFrontier. max segment tree over city ids. leaf of city i is fixed at tree[i+size],
tree[x] caches the best of tree[2x] and tree[2x+1], root is tree[1].

size = 4:

	              [1]
	         /           \
	       [2]           [3]
	      /   \         /   \
	    [4]   [5]     [6]   [7]
	   city0 city1   city2 city3

relax & pop are O(log n), reading the best is O(1).
*/
type PriorityFrontier struct {
	size int
	tree []PathPriority
}

// NewPriorityFrontier. size is the next power of two >= numCities.
func NewPriorityFrontier(numCities int) *PriorityFrontier {
	size := 1
	for size < numCities {
		size *= 2
	}

	return &PriorityFrontier{
		size: size,
		tree: make([]PathPriority, 2*size),
	}
}

func (f *PriorityFrontier) IsEmpty() bool {
	return !f.tree[1].Set
}

// get. current value of the leaf of cityID.
func (f *PriorityFrontier) get(cityID int32) PathPriority {
	return f.tree[int(cityID)+f.size]
}

// Relax. overwrite the leaf of p.CityID if p is not worse than the current value (ties overwrite).
// return true if the leaf was overwritten.
func (f *PriorityFrontier) Relax(p PathPriority) bool {
	x := int(p.CityID) + f.size
	if ComparePriority(f.tree[x], p) > 0 {
		return false
	}

	f.tree[x] = p
	f.update(x / 2)
	return true
}

// PopBest. remove & return the best value. ok is false if the frontier is empty.
func (f *PriorityFrontier) PopBest() (PathPriority, bool) {
	best := f.tree[1]
	if !best.Set {
		return best, false
	}

	x := int(best.CityID) + f.size
	f.tree[x] = EmptyPriority()
	f.update(x / 2)
	return best, true
}

// update. recompute ancestors from x up to the root. ties keep the left child.
func (f *PriorityFrontier) update(x int) {
	for ; x >= 1; x /= 2 {
		left, right := f.tree[2*x], f.tree[2*x+1]
		if ComparePriority(left, right) < 0 {
			f.tree[x] = right
		} else {
			f.tree[x] = left
		}
	}
}
