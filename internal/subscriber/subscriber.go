// Package subscriber holds the in-memory subscriber registry.
package subscriber

// Subscriber is a single registered email address. The email is kept
// verbatim as supplied by the caller.
type Subscriber struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
