package driven

// Navigator is the session-lost capability: it reports where the operator
// currently is and moves them to the login entry point.
type Navigator interface {
	// Location returns the current location path. It must reflect any
	// completed Navigate call immediately.
	Location() string

	// Navigate moves to the given path.
	Navigate(path string)
}
