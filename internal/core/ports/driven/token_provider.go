package driven

import (
	"context"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/domain"
)

// CredentialProvider gives the transport layer access to the live credential.
// It is implemented by the credential store; the authenticated transport reads
// it before every request and clears it when the server rejects the session.
type CredentialProvider interface {
	// Get returns the current credential and whether one exists.
	// It never fails: storage problems are reported as absence.
	Get(ctx context.Context) (domain.Credential, bool)

	// Clear destroys the credential on every tier.
	Clear(ctx context.Context)
}
