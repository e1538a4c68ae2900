package domain

// Subscriber is a person eligible for a notification. Subscribers are not
// stored as their own entity; they are derived by filtering donation or
// commenter records on their notification flags.
type Subscriber struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
