// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The CredentialStore is the single owner of the admin credential; every
// other service reaches it through the store, never through a tier.
package services
