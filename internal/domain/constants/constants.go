// Package constants holds configuration-level string constants shared across layers.
package constants

const (
	// EnvDevelop is the env.env value used on developer machines.
	EnvDevelop = "develop"
	// EnvProduction is the env.env value used in production.
	EnvProduction = "production"
)

const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

const (
	// MessagingProviderCloud sends through the WhatsApp Cloud API.
	MessagingProviderCloud = "cloud"
	// MessagingProviderLog only logs outbound messages.
	MessagingProviderLog = "log"
)

const (
	// EventOrderCreated is published once per finalized checkout.
	EventOrderCreated = "order.created"
	// EventOrderStatusChanged is published after an admin status update.
	EventOrderStatusChanged = "order.status_changed"
)
