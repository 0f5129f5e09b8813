package auth

// TokenManager defines the interface for session token operations.
type TokenManager interface {
	// GenerateToken creates a signed session token for a user.
	GenerateToken(userID, username, role string) (string, error)
	// ValidateToken parses and validates a session token.
	ValidateToken(tokenString string) (*Claims, error)
}

// Ensure JWTManager implements TokenManager interface
var _ TokenManager = (*JWTManager)(nil)
