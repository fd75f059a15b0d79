// Package constants defines shared domain-level constants.
package constants

// Pub/Sub provider identifiers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Content provider identifiers.
const (
	ContentProviderBuiltin = "builtin"
	ContentProviderRemote  = "remote"
)
