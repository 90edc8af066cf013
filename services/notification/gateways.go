package notification

// Mailer delivers notification emails. Sends are best-effort; delivery
// failures are logged by the implementation and never surface here.
type Mailer interface {
	Send(to, subject, body string)
}

// Notificateur pushes a live event to a connected user. Pushing to an
// offline user is a no-op.
type Notificateur interface {
	NotifyClient(userID, event string, data interface{})
}
