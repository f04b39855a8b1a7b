package keys

import (
	"crypto/sha256"
	"regexp"
)

var whitespace = regexp.MustCompile(`\s+`)

// DeriveSubKey derives the role key of an account from its master password.
// The seed is name+role+password with whitespace runs collapsed to a single
// space; SHA256 of its ASCII bytes is the private key, returned as WIF.
// Characters outside ASCII are hashed as '?'.
func DeriveSubKey(name, password, role string) string {
	seed := whitespace.ReplaceAllString(name+role+password, " ")
	sum := sha256.Sum256(asciiBytes(seed))
	return EncodePrivateKey(sum[:])
}

func asciiBytes(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0x7f {
			r = '?'
		}
		out = append(out, byte(r))
	}
	return out
}
