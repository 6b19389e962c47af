package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way digests and checks
// candidate passwords against stored digests.
//
// Implementations never keep or log the plaintext.
type PasswordHasher interface {
	// Hash returns a salted digest of plaintext suitable for storage.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest. A mismatch, as well as
	// a digest that cannot be parsed, is reported as false.
	Verify(plaintext, digest string) bool
}
