// Package base58 implements the block-wise base58 encoding used by Monero
// addresses.
//
// Input is split into 8-byte blocks, each encoded big-endian into exactly 11
// characters; a trailing partial block of n bytes encodes into a fixed number
// of characters given by encodedBlockSizes[n]. Unlike Bitcoin base58 there is
// no leading-zero handling and no built-in checksum.
package base58

import (
	"errors"
	"math/bits"
	"strings"
)

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const (
	fullBlockSize        = 8
	fullEncodedBlockSize = 11
)

var (
	// ErrInvalidSymbol is returned for characters outside the alphabet.
	ErrInvalidSymbol = errors.New("base58: invalid symbol")
	// ErrInvalidBlockSize is returned when the trailing block has an impossible length.
	ErrInvalidBlockSize = errors.New("base58: invalid block size")
	// ErrOverflow is returned when a block decodes to more bytes than it may hold.
	ErrOverflow = errors.New("base58: block overflow")
)

// encodedBlockSizes[n] is the encoded length of an n-byte block.
var encodedBlockSizes = [fullBlockSize + 1]int{0, 2, 3, 5, 6, 7, 9, 10, 11}

// decodedBlockSizes[n] is the byte length of an n-character block, or -1.
var decodedBlockSizes = [fullEncodedBlockSize + 1]int{0, -1, 1, 2, -1, 3, 4, 5, -1, 6, 7, 8}

var decodeTable = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = int8(i)
	}
	return t
}()

// Encode returns the Monero base58 encoding of b.
func Encode(b []byte) string {
	full := len(b) / fullBlockSize
	rem := len(b) % fullBlockSize

	var sb strings.Builder
	sb.Grow(full*fullEncodedBlockSize + encodedBlockSizes[rem])
	for i := 0; i < full; i++ {
		encodeBlock(&sb, b[i*fullBlockSize:(i+1)*fullBlockSize])
	}
	if rem > 0 {
		encodeBlock(&sb, b[full*fullBlockSize:])
	}
	return sb.String()
}

func encodeBlock(sb *strings.Builder, block []byte) {
	var num uint64
	for _, c := range block {
		num = num<<8 | uint64(c)
	}
	out := make([]byte, encodedBlockSizes[len(block)])
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = alphabet[num%58]
		num /= 58
	}
	sb.Write(out)
}

// Decode returns the bytes encoded by s.
func Decode(s string) ([]byte, error) {
	full := len(s) / fullEncodedBlockSize
	rem := len(s) % fullEncodedBlockSize
	remBytes := decodedBlockSizes[rem]
	if remBytes < 0 {
		return nil, ErrInvalidBlockSize
	}

	out := make([]byte, 0, full*fullBlockSize+remBytes)
	for i := 0; i < full; i++ {
		var err error
		out, err = decodeBlock(out, s[i*fullEncodedBlockSize:(i+1)*fullEncodedBlockSize])
		if err != nil {
			return nil, err
		}
	}
	if rem > 0 {
		var err error
		out, err = decodeBlock(out, s[full*fullEncodedBlockSize:])
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func decodeBlock(dst []byte, block string) ([]byte, error) {
	size := decodedBlockSizes[len(block)]

	var num uint64
	for i := 0; i < len(block); i++ {
		digit := decodeTable[block[i]]
		if digit < 0 {
			return nil, ErrInvalidSymbol
		}
		hi, lo := bits.Mul64(num, 58)
		if hi != 0 {
			return nil, ErrOverflow
		}
		var carry uint64
		num, carry = bits.Add64(lo, uint64(digit), 0)
		if carry != 0 {
			return nil, ErrOverflow
		}
	}
	if size < fullBlockSize && num>>(8*uint(size)) != 0 {
		return nil, ErrOverflow
	}

	for i := size - 1; i >= 0; i-- {
		dst = append(dst, byte(num>>(8*uint(i))))
	}
	return dst, nil
}
