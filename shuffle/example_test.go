package shuffle

import (
	"fmt"

	"github.com/markkurossi/cascade/key"
)

// Example corrects a key bit through a view and shows the write
// reaching the underlying key.
func Example() {
	k, err := key.Parse("1011")
	if err != nil {
		panic(err)
	}
	s, err := New(k, Identity)
	if err != nil {
		panic(err)
	}
	fmt.Printf("bits:    %s\n", s)
	fmt.Printf("mapping: %s\n", s.MappingString())

	if err := s.FlipBit(0); err != nil {
		panic(err)
	}
	fmt.Printf("flipped: %s\n", s)
	fmt.Printf("key:     %s\n", k)

	// Output:
	// bits:    1011
	// mapping: 0->0=1 1->1=0 2->2=1 3->3=1
	// flipped: 0011
	// key:     0011
}
