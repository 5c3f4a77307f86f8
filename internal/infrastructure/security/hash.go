package security

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// HashIP returns a keyed BLAKE2b digest of a client address, so logs can
// correlate requests without storing the address itself.
func HashIP(ip, secret string) string {
	if ip == "" {
		return ""
	}
	key := []byte(secret)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum512(key)
		key = sum[:]
	}
	h, err := blake2b.New256(key)
	if err != nil {
		return ""
	}
	h.Write([]byte(ip))
	return hex.EncodeToString(h.Sum(nil)[:12])
}
