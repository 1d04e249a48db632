package hmap

// probe walks a power-of-two table in groups of groupSize slots using
// quadratic probing: offsets H, H+g, H+3g, H+6g, ... With triangular
// increments, the sequence visits size/groupSize group positions whose
// windows cover every slot of the table exactly once.
type probe struct {
	offset int
	acc    int
	mask   int
}

// newProbe returns a [probe] for the given hash.
func newProbe(hash uint, capacity int) probe {
	mask := capacity - 1
	return probe{offset: int(hash) & mask, mask: mask}
}

// next returns the next probe position.
func (p probe) next() probe {
	p.acc += groupSize
	p.offset += p.acc
	p.offset &= p.mask
	return p
}

func (p probe) groupIndex() int        { return p.offset + 1 } // backing arrays are 1 indexed
func (p probe) elementIndex(e int) int { return (p.offset+e)&p.mask + 1 }

// subModulo subtracts x from a 1-indexed position and returns the new
// position in [1, sz].
func subModulo(pos, x, sz int) int {
	pos -= x
	if pos < 1 {
		pos += sz
	}
	return pos
}
