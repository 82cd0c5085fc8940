package constant

const (
	// Fiber locals keys populated by the auth middleware.
	LocalsUserID = "userID"
	LocalsEmail  = "email"

	BearerScheme = "Bearer"

	// RevocationKeyPrefix namespaces denylist entries in the key-value store.
	RevocationKeyPrefix = "revoked:"
)
