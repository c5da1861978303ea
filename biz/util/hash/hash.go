package hash

import (
	"golang.org/x/crypto/bcrypt"
)

// bcrypt工作因子,与历史数据保持一致,不要随意调整
const cost = 10

// Hash derives a salted one-way hash of the password. The salt is generated
// per call, so hashing the same password twice yields different values.
func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches the stored hash. Mismatches and
// malformed hashes both return false, never an error.
func Verify(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// DummyVerify burns the same bcrypt cost as a real comparison. Used when the
// username is unknown so that lookups cannot be distinguished by timing.
func DummyVerify(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("stock-tracker-dummy"), cost)
	if err != nil {
		panic(err)
	}
	return h
}()
