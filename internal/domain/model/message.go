package model

import "time"

// AdminParticipant is the fixed identifier of the admin side of every chat.
const AdminParticipant = "admin"

// Message is one chat transcript entry. Lifecycle events are mirrored into
// the transcript as synthetic messages with the customer as sender.
type Message struct {
	ID          string
	CreatedAt   time.Time
	Content     string
	SenderID    string
	SenderName  string
	IsAdmin     bool
	RecipientID string
}

// ChatSession summarizes one customer conversation for the admin inbox.
type ChatSession struct {
	SenderID    string
	SenderName  string
	LastMessage string
	LastActive  time.Time
}
