package address

import "xmrkeys/internal/crypto"

func keccakChecksum(data []byte) []byte {
	sum := crypto.Keccak256(data)
	return sum[:checksumSize]
}
