package bitvector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

const bitsPerByte = 8

// ErrIndexOutOfRange is the panic value (wrapped) of Bit and SetBit when the index is not below Len.
var ErrIndexOutOfRange = errors.New("bit index out of range")

// Represents a growable sequence of bits packed eight to a byte.
// Bit i is stored in bit i%8 of byte i/8, so the first bit of the vector is the least significant
// bit of the first byte. For example, the bits [1, 0, 1, 1, 0, 0, 0, 0, 1] are stored as
//
//	data = [0b00001101, 0b00000001] (len=9)
//
// The unused bits of the last byte are always zero.
type BitVector struct {
	data []byte
	len  uint // number of used bits
}

// Returns an empty bit vector.
func New() *BitVector {
	return &BitVector{}
}

// Packs bits into a new bit vector of length len(bits).
func NewFromBools(bits []bool) *BitVector {
	b := &BitVector{
		data: make([]byte, byteCount(uint(len(bits)))),
		len:  uint(len(bits)),
	}

	for i, bit := range bits {
		if bit {
			b.data[i/bitsPerByte] |= 1 << (i % bitsPerByte)
		}
	}

	return b
}

// Builds a bit vector of the given length from the first length bits of s.
func FromBitSet(length uint, s *bitset.BitSet) *BitVector {
	b := &BitVector{
		data: make([]byte, byteCount(length)),
		len:  length,
	}

	for i, ok := s.NextSet(0); ok && i < length; i, ok = s.NextSet(i + 1) {
		b.data[i/bitsPerByte] |= 1 << (i % bitsPerByte)
	}

	return b
}

func (b *BitVector) Len() uint {
	return b.len
}

func (b *BitVector) IsEmpty() bool {
	return b.len == 0
}

// Appends a single bit. A byte is only added when the last one is full.
func (b *BitVector) Push(bit bool) {
	if b.len%bitsPerByte == 0 {
		b.data = append(b.data, 0)
	}

	b.len++
	if bit {
		i := b.len - 1
		b.data[i/bitsPerByte] |= 1 << (i % bitsPerByte)
	}
}

// Returns the bit at position i, where i = 0 is the first pushed bit.
// Panics if i >= Len().
func (b *BitVector) Bit(i uint) bool {
	b.checkIndex(i)
	return b.data[i/bitsPerByte]&(1<<(i%bitsPerByte)) != 0
}

// Sets the bit at position i to v. Panics if i >= Len().
func (b *BitVector) SetBit(i uint, v bool) {
	b.checkIndex(i)

	mask := byte(1) << (i % bitsPerByte)
	if v {
		b.data[i/bitsPerByte] |= mask
	} else {
		b.data[i/bitsPerByte] &^= mask
	}
}

// Returns all the bits of the vector in index order.
func (b *BitVector) Data() []bool {
	bits := make([]bool, b.len)
	for i := range bits {
		bits[i] = b.data[i/bitsPerByte]&(1<<(i%bitsPerByte)) != 0
	}
	return bits
}

// Returns a copy of the packed bytes. Unused bits of the last byte are zero.
func (b *BitVector) Bytes() []byte {
	res := make([]byte, len(b.data))
	copy(res, b.data)
	return res
}

// Converts the bit vector into a bitset.BitSet of the same length.
func (b *BitVector) BitSet() *bitset.BitSet {
	s := bitset.New(b.len)
	for i := range b.len {
		if b.data[i/bitsPerByte]&(1<<(i%bitsPerByte)) != 0 {
			s.Set(i)
		}
	}
	return s
}

// Sets the bit vector to the same value as x.
func (b *BitVector) Set(x *BitVector) *BitVector {
	if b == x {
		return b
	}

	b.data = make([]byte, len(x.data))
	copy(b.data, x.data)
	b.len = x.len
	return b
}

// Returns a deep copy of the bit vector.
func (b *BitVector) Copy() *BitVector {
	return new(BitVector).Set(b)
}

// Checks if two bit vectors have the same length and the same bits.
func (b *BitVector) Equal(x *BitVector) bool {
	if b.len != x.len {
		return false
	}

	for i := range b.data {
		if b.data[i] != x.data[i] {
			return false
		}
	}
	return true
}

// The following combinators set the bit vector to a fresh result of length max(x.Len(), y.Len()).
// Positions past the end of the shorter operand are read as zero. For example:
//
//	x = 1011 (len=4, index 0 first)
//	y = 01 (len=2)
//	Xor(x, y) = 1111 (len=4)
//	And(x, y) = 0000 (len=4)
//	Or(x, y) = 1111 (len=4)
//
// The receiver may be one of the operands; the result never shares storage with them.

// Sets the bit vector to x & y and returns the bit vector.
func (b *BitVector) And(x, y *BitVector) *BitVector {
	return b.combine(x, y, func(p, q byte) byte { return p & q })
}

// Sets the bit vector to x | y and returns the bit vector.
func (b *BitVector) Or(x, y *BitVector) *BitVector {
	return b.combine(x, y, func(p, q byte) byte { return p | q })
}

// Sets the bit vector to x ^ y and returns the bit vector.
func (b *BitVector) Xor(x, y *BitVector) *BitVector {
	return b.combine(x, y, func(p, q byte) byte { return p ^ q })
}

// Returns the bits as a binary string, most significant (last) bit first.
func (b *BitVector) Binary() string {
	var sb strings.Builder
	sb.Grow(int(b.len))
	for i := b.len; i > 0; i-- {
		if b.data[(i-1)/bitsPerByte]&(1<<((i-1)%bitsPerByte)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Returns a string representation of the bit vector.
// This is typically used for logging or debugging.
func (b *BitVector) String() string {
	return fmt.Sprintf("(%d) %s", b.len, b.Binary())
}

// Unused bits are zero on both operands, so combining whole bytes keeps them zero for and, or and xor.
func (b *BitVector) combine(x, y *BitVector, op func(p, q byte) byte) *BitVector {
	length := max(x.len, y.len)
	data := make([]byte, byteCount(length))
	for i := range data {
		data[i] = op(x.byteAt(i), y.byteAt(i))
	}

	b.data = data
	b.len = length
	return b
}

func (b *BitVector) byteAt(i int) byte {
	if i < len(b.data) {
		return b.data[i]
	}
	return 0
}

func (b *BitVector) checkIndex(i uint) {
	if i >= b.len {
		panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, b.len))
	}
}

// Returns the number of bytes needed to hold n bits.
func byteCount(n uint) uint {
	return (n + bitsPerByte - 1) / bitsPerByte
}
