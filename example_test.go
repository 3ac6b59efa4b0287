package seqnum_test

import (
	"fmt"

	"github.com/sweet-security/seqnum"
)

func ExampleValue_Compare() {
	// 65530 wraps past zero and reaches 4, so under serial number
	// arithmetic it comes before 4 despite its larger representation.
	a := seqnum.From(uint16(65530))
	b := seqnum.From(uint16(4))
	fmt.Println(a.Compare(b))
	fmt.Println(a.Add(10).Compare(b)) // 65530+10 wraps to exactly 4

	// Two values half the space apart have no defined order.
	fmt.Println(seqnum.From(uint16(0)).Compare(seqnum.From(uint16(32768))))
	// Output:
	// less
	// equal
	// opposite
}

func ExampleValue_AddChecked() {
	v := seqnum.From(uint16(40000))
	if _, err := v.AddChecked(32768); err != nil {
		fmt.Println(err)
	}
	sum, _ := v.AddChecked(30000)
	fmt.Println(sum, sum.GreaterThan(v))
	// Output:
	// seqnum: offset exceeds half the sequence space
	// 4464 true
}

func ExampleSpace() {
	// A 24-bit counter carried in uint32 storage, as used by RTP-style
	// extended sequence numbers.
	s, _ := seqnum.NewSpace[uint32](24)
	max := uint32(1<<24 - 1)
	fmt.Println(s.Next(max))
	fmt.Println(s.LessThan(max-2, 5))
	fmt.Println(s.Compare(1<<24+10, 10))
	// Output:
	// 0
	// true
	// equal
}
