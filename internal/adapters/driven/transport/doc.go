// Package transport implements driven.APIClient over net/http.
//
// A Client holds two independent transports sharing one base URL and default
// headers:
//
//   - public: no credential handling, used for the login call
//   - authenticated: runs request hooks before dispatch and response hooks
//     after every response or failure; the AuthInterceptor is registered here
//
// # Body Shapes
//
// The request body's runtime type decides its encoding. A *driven.FormData is
// written as multipart/form-data and always carries the generated boundary
// Content-Type, even if the caller supplied another one. Readers and byte
// slices are sent untouched and never labelled JSON. Everything else is
// encoded as JSON.
//
// # Errors
//
// Non-2xx responses are returned as *APIError. A 401 unwraps to
// domain.ErrAuthenticationFailed. Network errors are returned unmodified.
// Nothing is retried.
package transport
