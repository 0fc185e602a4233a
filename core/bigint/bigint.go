package bigint

import (
	"math/big"

	"github.com/NethermindEth/bitint/core/bitvector"
	"github.com/NethermindEth/bitint/uint128"
)

// BigInteger is a non-negative integer of unbounded width.
// The magnitude is stored least significant bit first: bit i has weight 2^i.
// Values are immutable; every operation returns a new BigInteger.
type BigInteger struct {
	mag *bitvector.BitVector
}

// New expands all 128 bits of v into a magnitude of width uint128.Bits.
// High zero bits are kept; use Trim for the minimal width.
func New(v uint128.Int) *BigInteger {
	bits := make([]bool, uint128.Bits)
	for i := range bits {
		bits[i] = v.Bit(uint(i))
	}

	return &BigInteger{mag: bitvector.NewFromBools(bits)}
}

// NewUint64 is New for values that fit in 64 bits. The result is still uint128.Bits wide.
func NewUint64(v uint64) *BigInteger {
	return New(uint128.From64(v))
}

// Add returns z + y using ripple-carry addition over the xor and and of the two magnitudes.
// The result is one bit wider than the wider operand, so the carry out of the top bit is never lost.
// The exceptions are two empty magnitudes and two zeros of width uint128.Bits, which both sum to
// NewUint64(0).
func (z *BigInteger) Add(y *BigInteger) *BigInteger {
	x := new(bitvector.BitVector).Xor(z.mag, y.mag)
	a := new(bitvector.BitVector).And(z.mag, y.mag)
	if x.IsEmpty() || (x.Len() == uint128.Bits && isZero(x) && isZero(a)) {
		return NewUint64(0)
	}

	sum := bitvector.New()
	sum.Push(x.Bit(0))

	var carry uint8
	for i := range max(a.Len(), x.Len()) {
		s := carry
		if i+1 < x.Len() && x.Bit(i+1) {
			s++
		}
		if i < a.Len() && a.Bit(i) {
			s++
		}

		sum.Push(s&1 == 1)
		carry = s >> 1
	}

	if carry == 1 {
		sum.Push(true)
	}

	return &BigInteger{mag: sum}
}

// The following combine the magnitudes bit by bit. The result is as wide as the wider operand.

func (z *BigInteger) Xor(y *BigInteger) *BigInteger {
	return &BigInteger{mag: new(bitvector.BitVector).Xor(z.mag, y.mag)}
}

func (z *BigInteger) And(y *BigInteger) *BigInteger {
	return &BigInteger{mag: new(bitvector.BitVector).And(z.mag, y.mag)}
}

func (z *BigInteger) Or(y *BigInteger) *BigInteger {
	return &BigInteger{mag: new(bitvector.BitVector).Or(z.mag, y.mag)}
}

// Trim returns z without its high zero bits. Zero trims to an empty magnitude.
func (z *BigInteger) Trim() *BigInteger {
	bits := z.mag.Data()
	n := len(bits)
	for n > 0 && !bits[n-1] {
		n--
	}
	return &BigInteger{mag: bitvector.NewFromBools(bits[:n])}
}

// Magnitude returns a copy of the bits of z.
func (z *BigInteger) Magnitude() *bitvector.BitVector {
	return z.mag.Copy()
}

// Bits returns the bits of z, least significant first.
func (z *BigInteger) Bits() []bool {
	return z.mag.Data()
}

// Len returns the width of the magnitude in bits, including high zero bits.
func (z *BigInteger) Len() uint {
	return z.mag.Len()
}

func (z *BigInteger) IsZero() bool {
	return isZero(z.mag)
}

// Uint128 returns z as a uint128.Int. ok is false if z has a set bit at or past position 128.
func (z *BigInteger) Uint128() (uint128.Int, bool) {
	var hi, lo uint64
	for i, bit := range z.mag.Data() {
		if !bit {
			continue
		}
		if i >= uint128.Bits {
			return uint128.Zero, false
		}
		if i < 64 {
			lo |= 1 << i
		} else {
			hi |= 1 << (i - 64)
		}
	}
	return uint128.New(hi, lo), true
}

func (z *BigInteger) Big() *big.Int {
	res := new(big.Int)
	for i, bit := range z.mag.Data() {
		if bit {
			res.SetBit(res, i, 1)
		}
	}
	return res
}

// Text returns the representation of z in the given base (2 to 62), without prefix.
func (z *BigInteger) Text(base int) string {
	return z.Big().Text(base)
}

// String returns the decimal representation of z.
func (z *BigInteger) String() string {
	return z.Text(10) //nolint:mnd
}

func isZero(b *bitvector.BitVector) bool {
	return b.BitSet().None()
}
