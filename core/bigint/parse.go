package bigint

import (
	"github.com/NethermindEth/bitint/core/bitvector"
	"github.com/pkg/errors"
)

var (
	ErrEmptyLiteral = errors.New("empty integer literal")
	ErrInvalidDigit = errors.New("invalid digit in integer literal")
)

const separator = '_'

// NewFromString parses a non-negative integer literal.
// The base is 10 unless the literal starts with 0x (16), 0o (8) or 0b (2), case insensitive.
// Single underscores may separate digits. The result has the minimal width.
//
// Digits are accumulated as result = result*base + digit with shifts and Add, so parsing never
// leaves the bit vector representation.
func NewFromString(literal string) (*BigInteger, error) {
	base, digits := splitBase(literal)
	if digits == "" {
		return nil, errors.Wrapf(ErrEmptyLiteral, "literal %q", literal)
	}
	prefixLen := len(literal) - len(digits)

	acc := &BigInteger{mag: bitvector.New()}
	lastWasDigit := false
	for pos, r := range digits {
		if r == separator {
			if !lastWasDigit || pos == len(digits)-1 {
				return nil, errors.Wrapf(ErrInvalidDigit, "misplaced separator at offset %d in %q", prefixLen+pos, literal)
			}
			lastWasDigit = false
			continue
		}

		d, ok := digitValue(r)
		if !ok || d >= base {
			return nil, errors.Wrapf(ErrInvalidDigit, "%q at offset %d in %q", r, prefixLen+pos, literal)
		}

		acc = acc.mulSmall(base).Add(fromSmall(d)).Trim()
		lastWasDigit = true
	}

	return acc, nil
}

//nolint:mnd
func splitBase(literal string) (uint, string) {
	if len(literal) < 2 || literal[0] != '0' {
		return 10, literal
	}

	switch literal[1] {
	case 'x', 'X':
		return 16, literal[2:]
	case 'o', 'O':
		return 8, literal[2:]
	case 'b', 'B':
		return 2, literal[2:]
	default:
		return 10, literal
	}
}

//nolint:mnd
func digitValue(r rune) (uint, bool) {
	switch {
	case '0' <= r && r <= '9':
		return uint(r - '0'), true
	case 'a' <= r && r <= 'z':
		return uint(r-'a') + 10, true
	case 'A' <= r && r <= 'Z':
		return uint(r-'A') + 10, true
	default:
		return 0, false
	}
}

// Returns the minimal width magnitude of a small value.
func fromSmall(v uint) *BigInteger {
	mag := bitvector.New()
	for ; v != 0; v >>= 1 {
		mag.Push(v&1 == 1)
	}
	return &BigInteger{mag: mag}
}

// Returns z*k as a sum of shifted copies of z, one per set bit of k.
func (z *BigInteger) mulSmall(k uint) *BigInteger {
	res := &BigInteger{mag: bitvector.New()}
	for shift := uint(0); k != 0; shift, k = shift+1, k>>1 {
		if k&1 == 1 {
			res = res.Add(z.shiftLeft(shift))
		}
	}
	return res
}

// Returns z*2^n by prepending n zero bits.
func (z *BigInteger) shiftLeft(n uint) *BigInteger {
	mag := bitvector.New()
	for range n {
		mag.Push(false)
	}
	for _, bit := range z.mag.Data() {
		mag.Push(bit)
	}
	return &BigInteger{mag: mag}
}
