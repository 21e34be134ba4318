package mailer

// NotificationJob is the JSON payload put on the RabbitMQ queue when a
// workflow transition produces a notification. The worker turns it into an
// email; delivery is best-effort and never blocks the workflow.
type NotificationJob struct {
	To      string `json:"to"`
	Name    string `json:"name,omitempty"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
