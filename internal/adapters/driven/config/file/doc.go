// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - EnvOverlay: BRB_* environment overrides on top of any ConfigStore
//   - TokenStore: credential tier keeping one raw file per key
package file
