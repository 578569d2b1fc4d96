package aes

import "testing"

func TestDouble(t *testing.T) {
	for i, tc := range []struct {
		x, want Uint128
	}{
		{Uint128{}, Uint128{}},
		{Uint128{Lo: 1}, Uint128{Lo: 2}},
		{Uint128{Lo: 1 << 63}, Uint128{Hi: 1}},
		{Uint128{Hi: 1 << 63}, Uint128{Lo: 0x87}},
		{
			Uint128{Hi: 0x8000000000000000, Lo: 0x000000000000abcd},
			Uint128{Hi: 0, Lo: 0x000000000001571d},
		},
		{
			Uint128{Hi: 0xdeadbeefcafebabe, Lo: 0x0011223344556677},
			Uint128{Hi: 0xbd5b7ddf95fd757c, Lo: 0x0022446688aacc69},
		},
		{
			Uint128{Hi: ^uint64(0), Lo: ^uint64(0)},
			Uint128{Hi: ^uint64(0), Lo: 0xffffffffffffff79},
		},
	} {
		if got := tc.x.Double(); got != tc.want {
			t.Fatalf("#%d: expected %v, got %v", i, tc.want, got)
		}
	}
}

// TestDoubleLinear tests that doubling distributes over xor.
func TestDoubleLinear(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := randUint128(t)
		y := randUint128(t)
		want := x.Double().Xor(y.Double())
		if got := x.Xor(y).Double(); got != want {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

// TestBytes tests the little-endian layout of Uint128.
func TestBytes(t *testing.T) {
	x := Uint128{Hi: 0x0f0e0d0c0b0a0908, Lo: 0x0706050403020100}
	want := Block(unhex16("000102030405060708090a0b0c0d0e0f"))
	if got := x.Bytes(); got != want {
		t.Fatalf("expected %x, got %x", want, got)
	}
	if got := Uint128FromBytes(want); got != x {
		t.Fatalf("expected %v, got %v", x, got)
	}

	// The reduction constant lands in the first byte.
	b := Uint128{Hi: 1 << 63}.Double().Bytes()
	if b[0] != 0x87 {
		t.Fatalf("expected 0x87, got %#x", b[0])
	}
}

func TestEqual(t *testing.T) {
	x := randUint128(t)
	if !x.Equal(x) {
		t.Fatalf("%v != %v", x, x)
	}
	for _, y := range []Uint128{
		{Hi: x.Hi ^ 1, Lo: x.Lo},
		{Hi: x.Hi, Lo: x.Lo ^ 1 << 63},
	} {
		if x.Equal(y) {
			t.Fatalf("%v == %v", x, y)
		}
	}
}

func TestString(t *testing.T) {
	x := Uint128{Hi: 1, Lo: 0xff}
	const want = "{0x0000000000000001 0x00000000000000ff}"
	if got := x.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
