package vt_test

import (
	"fmt"
	"strconv"

	"github.com/ib-77/vtx/pkg/option"
	"github.com/ib-77/vtx/pkg/vt"
)

func Example() {
	parse := vt.Try(strconv.Atoi)
	format := vt.Map(strconv.Itoa)
	r := vt.Combine(parse, format)

	fmt.Println(r.Forward("1").Unwrap())
	fmt.Println(r.Forward("1.5").Unwrap())
	fmt.Println(r.Reverse(2).Unwrap())
	fmt.Println(vt.Flip(r).Forward(3).Unwrap())
	// Output:
	// 1 <nil>
	// 0 strconv.Atoi: parsing "1.5": invalid syntax
	// 2 <nil>
	// 3 <nil>
}

func ExampleLiftFromOptionalInput() {
	lifted := vt.LiftFromOptionalInput(vt.Try(strconv.Atoi), 0)

	fmt.Println(lifted.Transform(option.None[string]()).Result())
	fmt.Println(lifted.Transform(option.Some("5")).Result())
	fmt.Println(lifted.Transform(option.Some("5.5")).IsFailure())
	// Output:
	// 0
	// 5
	// true
}

func ExampleLiftToCollection() {
	lifted := vt.LiftToCollection(vt.Try(strconv.Atoi))

	fmt.Println(lifted.Transform([]string{"11", "12"}).Result())
	fmt.Println(lifted.Transform([]string{"11", "12.5"}).Err())
	// Output:
	// [11 12]
	// strconv.Atoi: parsing "12.5": invalid syntax
}

func ExampleComposeReversible() {
	toInt := vt.Combine(vt.Try(strconv.Atoi), vt.Map(strconv.Itoa))
	half := vt.Combine(
		vt.Map(func(n int) float64 { return float64(n) / 2 }),
		vt.Map(func(f float64) int { return int(f * 2) }),
	)
	c := vt.ComposeReversible(toInt, half)

	fmt.Println(c.Forward("7").Result())
	fmt.Println(c.Reverse(1.5).Result())
	// Output:
	// 3.5
	// 3
}
