package domain

import "time"

// Newsletter is a published club newsletter issue.
type Newsletter struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	FileURL     string    `json:"file_url,omitempty" bson:"file_url,omitempty"`
	Date        time.Time `json:"date" bson:"date"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// MeetingNote is the minutes of a single club meeting.
type MeetingNote struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Body      string    `json:"body" bson:"body"`
	Date      time.Time `json:"date" bson:"date"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Pitch is a stock pitch presented at a meeting.
type Pitch struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Symbol    string    `json:"symbol" bson:"symbol"`
	Presenter string    `json:"presenter" bson:"presenter"`
	FileURL   string    `json:"file_url,omitempty" bson:"file_url,omitempty"`
	Date      time.Time `json:"date" bson:"date"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// GalleryImage is a photo shown on the public gallery page. The binary
// payload lives in the file store; FileID references it.
type GalleryImage struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Caption   string    `json:"caption,omitempty" bson:"caption,omitempty"`
	FileID    string    `json:"-" bson:"file_id"`
	URL       string    `json:"url" bson:"url"`
	Date      time.Time `json:"date" bson:"date"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Event is a scheduled club event.
type Event struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Location    string    `json:"location" bson:"location"`
	Date        time.Time `json:"date" bson:"date"`
	EndsAt      time.Time `json:"ends_at,omitempty" bson:"ends_at,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
