package models

// Email is a single outgoing message with a plain text body and an optional HTML body.
type Email struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}
