package domain

import "time"

// ChatMessage is an immutable chat line inside a peer group.
// SenderName is captured at send time and never refreshed.
type ChatMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

// OutgoingMessage is a message before the log assigns its id and timestamp.
type OutgoingMessage struct {
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"`
	Text       string `json:"text"`
}
