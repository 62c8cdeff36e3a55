package auth

// Config holds the key shared with the backend that issues access tokens.
type Config struct {
	SymmetricKey string `env:"TOKEN_SYMMETRIC_KEY" validate:"required,len=32"`
}
