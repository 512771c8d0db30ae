// Package model defines data structure.
package model

import "time"

// Message holds a single stored text message. ID and CreatedAt are
// assigned once at creation; Content and UpdatedAt change on update.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
