// Package auth implements password hashing, signed session cookies and
// request identity resolution.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Stored hashes have the form "salt,digest". The digest is Argon2id over
// name+password keyed by the salt; the original scheme here was a single
// unsalted-iteration SHA-256, kept only in format, not in construction.
const (
	saltLength = 8

	argonTime    uint32 = 3
	argonMemory  uint32 = 64 * 1024 // 64 MB
	argonThreads uint8  = 1
	argonKeyLen  uint32 = 32
)

const saltChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// makeSalt returns a short random alphanumeric salt.
func makeSalt() string {
	b := make([]byte, saltLength)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand failure is not recoverable
	}
	for i := range b {
		b[i] = saltChars[int(b[i])%len(saltChars)]
	}
	return string(b)
}

func deriveDigest(name, password, salt string) string {
	key := argon2.IDKey([]byte(name+password), []byte(salt),
		argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(key)
}

// MakeHash derives a salted password hash in "salt,digest" form using a
// freshly generated salt.
func MakeHash(name, password string) string {
	return makeHashWithSalt(name, password, makeSalt())
}

func makeHashWithSalt(name, password, salt string) string {
	return salt + "," + deriveDigest(name, password, salt)
}

// VerifyHash reports whether password matches the stored "salt,digest"
// hash for name. A malformed stored value simply yields false.
func VerifyHash(name, password, stored string) bool {
	salt, _, ok := strings.Cut(stored, ",")
	if !ok {
		return false
	}
	derived := makeHashWithSalt(name, password, salt)
	return subtle.ConstantTimeCompare([]byte(derived), []byte(stored)) == 1
}
