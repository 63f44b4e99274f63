package credentials

// Store owns the persisted session credential. Absence of a stored
// token is the sole signal of anonymity on startup; only the account
// store writes or deletes it, the transport only reads it.
type Store interface {
	// Token returns the stored credential and whether one is present.
	Token() (string, bool)

	// Save persists the credential for future sessions.
	Save(token string) error

	// Delete discards the credential. Deleting an absent credential is
	// not an error.
	Delete() error
}
