package admin

// Mailer delivers moderation emails. Sends are best-effort and must never
// block the moderation write that triggered them.
type Mailer interface {
	Send(to, subject, body string)
}
