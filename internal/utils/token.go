package utils

import "crypto/rand"

const orderRefLen = 10

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderRef returns an opaque upper-case base36 order reference. The value
// carries no semantics (not sequential, not derived from the order) and 10
// random characters make collisions vanishingly unlikely at storefront scale.
func NewOrderRef() (string, error) {
	buf := make([]byte, orderRefLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	out := make([]byte, orderRefLen)
	for i, b := range buf {
		out[i] = base36[int(b)%len(base36)]
	}
	return string(out), nil
}
