package hmap_test

import (
	"fmt"

	"github.com/db47h/prehash"
	"github.com/db47h/prehash/hmap"
)

func ExampleNewPreHashed() {
	ids := prehash.NewAllocator()
	m := hmap.NewPreHashed[prehash.H64, string]()

	venus := ids.Alloc()
	m.Set(ids.Alloc(), "earth")
	m.Set(venus, "venus")

	fmt.Println(m.Len())
	if name, ok := m.Get(venus); ok {
		fmt.Println(venus, name)
	}
	// Output:
	// 2
	// 0 venus
}

func ExampleNewPreHashedSet() {
	var ids prehash.AtomicAllocator
	s := hmap.NewPreHashedSet[prehash.H64]()

	a, b := ids.Alloc(), ids.Alloc()
	fmt.Println(s.Add(a))
	fmt.Println(s.Add(b))
	fmt.Println(s.Add(a))
	fmt.Println(s.Len())
	// Output:
	// true
	// true
	// false
	// 2
}
