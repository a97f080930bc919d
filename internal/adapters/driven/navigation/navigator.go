// Package navigation provides a driven.Navigator for command-line sessions.
//
// A CLI has no page to redirect, so "location" is the path of the command
// being executed (e.g. "/resource/list") and navigating to the login path
// tells the operator how to sign in again.
package navigation

import (
	"strings"
	"sync"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driven"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/logger"
)

// Ensure Navigator implements the interface.
var _ driven.Navigator = (*Navigator)(nil)

// Navigator tracks the current command location.
//
// Session loss only navigates while the location differs from the login
// path. The CLI calls SetLocation before each command; embedders that log
// in again must call SetLocation or pass the navigator as
// services.SessionConfig.Navigator, which moves it off the login path.
type Navigator struct {
	mu        sync.Mutex
	location  string
	loginPath string
	hint      string
	notifier  driven.Notifier
	history   []string
}

// NewNavigator creates a navigator. Arriving at loginPath sends hint to the
// notifier at warning level. notifier may be nil.
func NewNavigator(loginPath, hint string, notifier driven.Notifier) *Navigator {
	return &Navigator{
		location:  "/",
		loginPath: loginPath,
		hint:      hint,
		notifier:  notifier,
	}
}

// SetLocation records the command now running. Called by the CLI before
// dispatch; it is not a navigation and notifies nobody.
func (n *Navigator) SetLocation(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.location = normalise(path)
}

// Location returns the current location.
func (n *Navigator) Location() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.location
}

// Navigate moves to path and notifies when path is the login path.
func (n *Navigator) Navigate(path string) {
	path = normalise(path)

	n.mu.Lock()
	n.location = path
	n.history = append(n.history, path)
	notify := n.notifier != nil && path == normalise(n.loginPath)
	n.mu.Unlock()

	logger.Debug("navigated to %s", path)
	if notify {
		n.notifier.Notify(driven.NotifyWarning, n.hint)
	}
}

// History returns every navigation target in order.
func (n *Navigator) History() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.history...)
}

// LocationForCommand converts a cobra command path ("brbadmin resource list")
// into a location ("/resource/list"). The root command name is dropped.
func LocationForCommand(commandPath string) string {
	parts := strings.Fields(commandPath)
	if len(parts) <= 1 {
		return "/"
	}
	return "/" + strings.Join(parts[1:], "/")
}

func normalise(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}
