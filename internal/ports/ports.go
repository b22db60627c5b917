package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Input
	TemplateLoader  TemplateLoader
	RecipientLoader RecipientLoader

	// Delivery
	MailTransport MailTransport
	Journal       DeliveryJournal

	// Infrastructure
	Metrics MergeMetrics
	Logger  Logger
}
