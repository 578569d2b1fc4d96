package aes

// Hash computes the tweakable correlation-robust hash
//
//	H(tweak, x) = AES(x) ^ 2x ^ tweak
//
// where 2x is x doubled in GF(2^128).
func (c *Cipher) Hash(tweak, x Uint128) Uint128 {
	y := x.Double().Xor(tweak)
	return c.Encrypt(x).Xor(y)
}

// Hash2 folds two inputs into Hash:
//
//	H2(tweak, x, y) = H(tweak, x ^ 2y)
func (c *Cipher) Hash2(tweak, x, y Uint128) Uint128 {
	z := x.Xor(y.Double())
	return c.Hash(tweak, z)
}
