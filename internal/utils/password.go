package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt-hashes a plain password. The cost comes from
// BCRYPT_COST; anything below the algorithm's minimum falls back to the
// bcrypt default so a misconfigured environment cannot weaken stored hashes.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash. Any
// comparison failure, including a corrupt hash, reads as a mismatch.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
