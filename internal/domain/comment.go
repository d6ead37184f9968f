package domain

import "time"

// Comment is a free-text note attached to a client and one of that
// client's projects. At creation the referenced project must belong to the
// referenced client; CreatedDate is server-assigned.
type Comment struct {
	ID          int64     `json:"id"`
	ClientID    int64     `json:"client_id"`
	ProjectID   int64     `json:"project_id"`
	CommentText string    `json:"comment_text"`
	CreatedDate time.Time `json:"created_date"`
}
