// Package tape implements the deterministic pseudo-random function that
// turns an OPE key and a recursion label into a 128-bit coin tape:
// HMAC-SHA256(key, label) keys an AES-256-CTR stream, whose first block
// is expanded into bits.
package tape

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"strconv"

	"bclo-ope/bitfield"
)

var zeroIV [16]byte

// Generate derives the 128-bit coin tape for (key, label). label is
// rendered as its canonical shortest decimal textual form -- two
// labels produce the same tape iff their textual forms are byte-equal,
// so implementations sharing ciphertexts must agree on this encoding
// exactly.
func Generate(key []byte, label float64) [128]byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(labelBytes(label))
	sum := mac.Sum(nil)

	block, err := aes.NewCipher(sum)
	if err != nil {
		// sum is always 32 bytes (HMAC-SHA256 output), a valid AES-256 key.
		panic(err)
	}

	stream := cipher.NewCTR(block, zeroIV[:])
	var ciphertext [16]byte
	stream.XORKeyStream(ciphertext[:], make([]byte, 16))

	return bitfield.FromBlock(ciphertext)
}

// labelBytes renders label the way the reference scheme serializes
// recursion labels before hashing them: the shortest decimal string
// that round-trips to label, with no forced fractional part.
func labelBytes(label float64) []byte {
	return []byte(strconv.FormatFloat(label, 'f', -1, 64))
}
