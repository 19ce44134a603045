package domain

type Identity struct {
	Email  string
	Secret string
}

// Matches reports whether the given credentials equal the stored
// ones exactly. Secrets are compared in plaintext for parity with
// the persisted record format.
func (id Identity) Matches(email, secret string) bool {
	return id.Email == email && id.Secret == secret
}
