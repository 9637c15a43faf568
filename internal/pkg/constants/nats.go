package constants

// NATS Subjects
const (
	SubjectCardCreated   = "cards.created"
	SubjectCardActivated = "cards.activated"
	SubjectCardRevoked   = "cards.revoked"
)
