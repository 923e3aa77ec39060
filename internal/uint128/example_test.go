package uint128_test

import (
	"fmt"

	"github.com/agbru/u128calc/internal/uint128"
)

func ExampleMul64() {
	// The exact double-width product: no bits are lost.
	p := uint128.Mul64(^uint64(0), ^uint64(0))
	fmt.Println(p.Hex())
	// Output: 0xfffffffffffffffe0000000000000001
}

func ExampleUint128_Mul() {
	a := uint128.From64(^uint64(0))
	fmt.Println(a.Mul(a).Hex())
	// Output: 0xfffffffffffffffe0000000000000001
}

func ExampleUint128_Lsh() {
	c := uint128.One.Lsh(100).Add64(42)
	fmt.Println(c.Hex())
	// Output: 0x0000001000000000000000000000002a
}

func ExampleUint128_Add() {
	// Addition wraps silently at 2^128.
	fmt.Println(uint128.Max.Add(uint128.One).Hex())
	// Output: 0x00000000000000000000000000000000
}

func ExampleUint128_String() {
	fmt.Println(uint128.From64(42))
	// Output: 42
}
