//go:build fuzz

package aes_test

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/Pratyush/fancy-garbling/aes"
	"github.com/Pratyush/fancy-garbling/internal/ref"
	rand "github.com/ericlagergren/saferand"
)

func TestFuzz(t *testing.T) {
	t.Run("generic", func(t *testing.T) {
		t.Parallel()

		testFuzz(t, aes.Generic)
	})
	if e, ok := aes.Hardware(); ok {
		t.Run("hardware", func(t *testing.T) {
			t.Parallel()

			testFuzz(t, e)
		})
	}
}

func testFuzz(t *testing.T, e aes.Engine) {
	d := 2 * time.Second
	if testing.Short() {
		d = 10 * time.Millisecond
	}
	if s := os.Getenv("AES_FUZZ_TIMEOUT"); s != "" {
		var err error
		d, err = time.ParseDuration(s)
		if err != nil {
			t.Fatal(err)
		}
	}
	tm := time.NewTimer(d)

	var key, tweak, x, y [16]byte
	src := make([]byte, 64*1024)
	dst := make([]byte, len(src))
	for i := 0; ; i++ {
		select {
		case <-tm.C:
			t.Logf("iters: %d", i)
			return
		default:
		}

		for _, p := range [][]byte{key[:], tweak[:], x[:], y[:]} {
			if _, err := rand.Read(p); err != nil {
				t.Fatal(err)
			}
		}
		n := rand.Intn(len(src)/aes.BlockSize) * aes.BlockSize
		if _, err := rand.Read(src[:n]); err != nil {
			t.Fatal(err)
		}
		src := src[:n]
		dst := dst[:n]

		h, err := ref.New(key[:])
		if err != nil {
			t.Fatal(err)
		}
		c := aes.NewWithEngine(e, key)

		c.EncryptBlocks(dst, src)
		for j := 0; j < n; j += aes.BlockSize {
			var in [16]byte
			copy(in[:], src[j:])
			want := h.Encrypt(in)
			if got := dst[j : j+aes.BlockSize]; !bytes.Equal(got, want[:]) {
				t.Fatalf("bad block at index %d of %d: expected %#x, got %#x",
					j, n, want, got)
			}
		}

		tw := aes.Uint128FromBytes(tweak)
		xx := aes.Uint128FromBytes(x)
		yy := aes.Uint128FromBytes(y)
		if want, got := h.Hash(tweak, x), c.Hash(tw, xx).Bytes(); got != want {
			t.Fatalf("Hash: expected %#x, got %#x", want, got)
		}
		if want, got := h.Hash2(tweak, x, y), c.Hash2(tw, xx, yy).Bytes(); got != want {
			t.Fatalf("Hash2: expected %#x, got %#x", want, got)
		}
	}
}
