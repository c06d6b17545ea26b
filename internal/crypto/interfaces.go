package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way digests and checks
// candidate passwords against them.
//
// Digests are self-describing: each one carries its own salt and cost, so
// Verify needs nothing but the stored string.
type PasswordHasher interface {
	// Hash returns a salted digest of password. Two calls with the same
	// password return different digests.
	Hash(password string) (string, error)

	// Verify reports whether password matches digest. A malformed digest
	// never matches.
	Verify(password, digest string) bool
}
