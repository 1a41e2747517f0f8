package service

import "time"

// PasswordPolicy encapsulates the reuse and age semantics of passwords.
// Syntactic strength is enforced at the boundary before this engine runs;
// candidates arriving here are assumed well-formed.
type PasswordPolicy interface {
	// IsReusedOrCurrent reports whether the candidate plaintext matches
	// the current hash or any entry of the history. Matching is done by
	// verifying the cleartext against each stored hash, not by comparing
	// hashes.
	IsReusedOrCurrent(candidate string, currentHash string, history []string) bool

	// RotateHistory prepends the outgoing hash to the history and
	// truncates to the retention depth. Called at the moment a new
	// password is committed.
	RotateHistory(currentHash string, history []string) []string

	// IsExpired reports whether a password older than maxAge must be
	// changed. Boundary-exact: true iff now >= lastChangedAt + maxAge.
	IsExpired(lastChangedAt time.Time, maxAge time.Duration) bool
}
