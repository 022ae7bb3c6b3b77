// Package session holds the handful of values that survive across app
// launches. The original client kept these in an ambient global store;
// here the store is an explicit dependency so components stay testable.
package session

// KeyUsername is the only key the core reads today.
const KeyUsername = "username"

type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)
	// Set writes the value; an empty value clears the key.
	Set(key, value string) error
}
