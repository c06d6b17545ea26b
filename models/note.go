package models

import (
	"strings"
	"time"
)

const (
	// MaxNotesPerUser is the number of notes a single user may hold at once.
	MaxNotesPerUser = 10

	// MinNoteWords is the smallest accepted note length in words.
	MinNoteWords = 1

	// MaxNoteWords is the largest accepted note length in words.
	MaxNoteWords = 50

	// DefaultNotesLimit is the page size used when the caller does not pass one.
	DefaultNotesLimit = 100
)

// Note is a short immutable text owned by exactly one user.
type Note struct {
	ID int64 `json:"id"`

	// Content is stored exactly as submitted.
	Content string `json:"content"`

	// WordCount is derived from Content when the note is written and is never
	// updated independently.
	WordCount int `json:"word_count"`

	UserID int64 `json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NewNote builds a note for userID with the word count computed from content.
func NewNote(userID int64, content string, createdAt time.Time) Note {
	return Note{
		Content:   content,
		WordCount: CountWords(content),
		UserID:    userID,
		CreatedAt: createdAt,
	}
}

// CountWords returns the number of whitespace-delimited tokens in content.
func CountWords(content string) int {
	return len(strings.Fields(content))
}
