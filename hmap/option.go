package hmap

import "math/bits"

const minCapacity = 16

type Option interface {
	set(*option)
}

type optFunc func(*option)

func (f optFunc) set(o *option) {
	f(o)
}

type option struct {
	capacity int
}

func getOpts(opts []Option) *option {
	o := &option{
		capacity: minCapacity,
	}
	for _, op := range opts {
		op.set(o)
	}
	return o
}

// Capacity returns an option setting the initial table size, rounded up to
// a power of two, with a minimum of 16 slots.
func Capacity(cap int) Option {
	return optFunc(func(o *option) {
		if cap < minCapacity {
			cap = minCapacity
		}
		// next power of two. Ignore 0 since cap > 0 at this point.
		b := bits.UintSize - bits.LeadingZeros(uint(cap)-1)
		o.capacity = 1 << b
	})
}
