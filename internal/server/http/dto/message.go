package dto

import (
	"time"

	"github.com/zoombxu/surplus/internal/domain/model"
)

// SendMessageRequest carries a chat message. Recipient is only honored
// for the admin; customers always write to the admin.
type SendMessageRequest struct {
	Content   string `json:"content"`
	Recipient string `json:"recipient,omitempty"`
}

// MessageResponse is the wire form of a transcript entry.
type MessageResponse struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	Content     string    `json:"content"`
	SenderID    string    `json:"senderId"`
	SenderName  string    `json:"senderName"`
	IsAdmin     bool      `json:"isAdmin"`
	RecipientID string    `json:"recipientId"`
}

// SessionResponse summarizes a conversation for the admin inbox.
type SessionResponse struct {
	SenderID    string    `json:"senderId"`
	SenderName  string    `json:"senderName"`
	LastMessage string    `json:"lastMessage"`
	LastActive  time.Time `json:"lastActive"`
}

// FromMessage converts a domain message to its wire form.
func FromMessage(message model.Message) MessageResponse {
	return MessageResponse{
		ID:          message.ID,
		CreatedAt:   message.CreatedAt,
		Content:     message.Content,
		SenderID:    message.SenderID,
		SenderName:  message.SenderName,
		IsAdmin:     message.IsAdmin,
		RecipientID: message.RecipientID,
	}
}

// FromSession converts a domain chat session to its wire form.
func FromSession(session model.ChatSession) SessionResponse {
	return SessionResponse{
		SenderID:    session.SenderID,
		SenderName:  session.SenderName,
		LastMessage: session.LastMessage,
		LastActive:  session.LastActive,
	}
}
