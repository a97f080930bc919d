package domain

// Credential is the opaque bearer token that proves an authenticated admin session.
// It is never decoded or validated locally: expiry is only discovered when the
// server rejects a request carrying it.
type Credential string

// String returns the raw credential value.
func (c Credential) String() string {
	return string(c)
}

// IsZero returns true if the credential is empty.
func (c Credential) IsZero() bool {
	return c == ""
}

// Redacted returns a masked form safe for logs and terminal output.
// Short credentials are fully masked.
func (c Credential) Redacted() string {
	if len(c) <= 8 {
		return "****"
	}
	return string(c[:4]) + "..." + string(c[len(c)-4:])
}
