package uint128

import (
	"encoding/binary"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Bits is the width of Int.
const Bits = 128

var (
	Zero = Int{}
	Max  = Int{math.MaxUint64, math.MaxUint64}
)

// Int is a 128-bit unsigned integer. Element 0 holds the least significant 64 bits.
type Int [2]uint64

func New(hi, lo uint64) Int {
	return Int{lo, hi}
}

func From64(v uint64) Int {
	return Int{v, 0}
}

func (i Int) Lo() uint64 { return i[0] }

func (i Int) Hi() uint64 { return i[1] }

// Reports whether bit n is set, where n = 0 is the least significant bit.
// Bits past 127 are never set.
func (i Int) Bit(n uint) bool {
	if n >= Bits {
		return false
	}
	return i[n/64]&(1<<(n%64)) != 0
}

// Returns the 16 byte big endian representation.
func (i Int) Bytes() []byte {
	res := make([]byte, 16) //nolint:mnd
	binary.BigEndian.PutUint64(res[0:8], i.Hi())
	binary.BigEndian.PutUint64(res[8:16], i.Lo())
	return res
}

func (i Int) Big() *big.Int {
	return new(big.Int).SetBytes(i.Bytes())
}

func (i *Int) Equal(x *Int) bool {
	if i == nil || x == nil {
		return i == x
	}
	return i[0] == x[0] && i[1] == x[1]
}

// Returns the 0x prefixed hex representation without leading zeros.
func (i Int) String() string {
	lo := strconv.FormatUint(i.Lo(), 16)
	if i.Hi() == 0 {
		return "0x" + lo
	}
	return "0x" + strconv.FormatUint(i.Hi(), 16) + strings.Repeat("0", 16-len(lo)) + lo
}
