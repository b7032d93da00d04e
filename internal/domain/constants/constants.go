// Package constants holds shared cross-layer constant values.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"

	// PubSubProviderLocal routes events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle routes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
