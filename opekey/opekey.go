// Package opekey is an external collaborator to the OPE core: it
// helps a caller obtain and display key material, but never
// participates in the encryption driver's determinism contract. Key
// management and storage are explicitly out of scope for the core
// (see the OPE scheme's non-goals); this package exists purely to
// make the cmd/ tools usable without asking an operator to paste raw
// key bytes by hand.
package opekey

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/sha3"
)

const (
	// DefaultIterations is a conservative PBKDF2 iteration count for
	// interactive CLI use; it is not a recommendation for long-term
	// key storage, which is out of this module's scope entirely.
	DefaultIterations = 100000
	// KeyLength is the number of derived key bytes handed to the tape
	// generator's HMAC-SHA256 step.
	KeyLength = 32
)

// DeriveFromPassphrase turns an operator-supplied passphrase into raw
// OPE key bytes using PBKDF2-HMAC-SHA256, so the CLI does not require
// callers to manage raw binary keys directly.
func DeriveFromPassphrase(passphrase, salt string, iterations int) []byte {
	return pbkdf2.Key([]byte(passphrase), []byte(salt), iterations, KeyLength, sha256.New)
}

// Fingerprint returns a short, non-secret hex digest of a key suitable
// for log lines that need to distinguish keys without leaking them.
func Fingerprint(key []byte) string {
	sum := sha3.Sum256(key)
	return hex.EncodeToString(sum[:8])
}
