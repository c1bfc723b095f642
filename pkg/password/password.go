// Package password hashes new credentials with bcrypt and verifies both bcrypt
// and the pbkdf2_sha256 format stored by the previous system.
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

const pbkdf2Algorithm = "pbkdf2_sha256"

var ErrUnknownFormat = errors.New("unknown password hash format")

// Hash returns a bcrypt hash of plain
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain matches hash. A mismatch is (false, nil);
// an error means the stored hash itself could not be read.
func Verify(hash, plain string) (bool, error) {
	switch {
	case strings.HasPrefix(hash, "$2a$"), strings.HasPrefix(hash, "$2b$"), strings.HasPrefix(hash, "$2y$"):
		err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return err == nil, err
	case strings.HasPrefix(hash, pbkdf2Algorithm+"$"):
		return verifyPBKDF2(hash, plain)
	default:
		return false, ErrUnknownFormat
	}
}

// NeedsRehash is true for hashes that should be upgraded to bcrypt after a successful login
func NeedsRehash(hash string) bool {
	return strings.HasPrefix(hash, pbkdf2Algorithm+"$")
}

// format: pbkdf2_sha256$<iterations>$<salt>$<base64 digest>
func verifyPBKDF2(hash, plain string) (bool, error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 4 {
		return false, fmt.Errorf("%w: expected 4 segments", ErrUnknownFormat)
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return false, fmt.Errorf("%w: bad iteration count", ErrUnknownFormat)
	}

	expected, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		return false, fmt.Errorf("%w: bad digest encoding", ErrUnknownFormat)
	}

	derived := pbkdf2.Key([]byte(plain), []byte(parts[2]), iterations, sha256.Size, sha256.New)
	return subtle.ConstantTimeCompare(derived, expected) == 1, nil
}

// encodePBKDF2 builds a hash in the legacy format; used by tests to produce fixtures
func encodePBKDF2(plain, salt string, iterations int) string {
	derived := pbkdf2.Key([]byte(plain), []byte(salt), iterations, sha256.Size, sha256.New)
	return fmt.Sprintf("%s$%d$%s$%s", pbkdf2Algorithm, iterations, salt, base64.StdEncoding.EncodeToString(derived))
}
