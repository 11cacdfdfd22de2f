package hash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Password returns the hex sha256 digest of a password. The digest is
// deterministic on purpose: the accounts file stores it verbatim and sign-in
// compares digests, never plaintext.
func Password(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func CheckPassword(digest, password string) bool {
	return subtle.ConstantTimeCompare([]byte(digest), []byte(Password(password))) == 1
}
