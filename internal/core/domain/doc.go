// Package domain defines the core types of the BRB admin client.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Credential: the opaque bearer token of an admin session
//   - SessionState: anonymous or authenticated, derived from the credential
//   - ResourceKind: an admin API collection and its paths
//   - ClientSettings: everything needed to build the API client
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
