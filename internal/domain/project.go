package domain

import "time"

// Project is a unit of work owned by exactly one client. StartDate is
// assigned by the server at creation and never changes afterwards, even
// when the rest of the project is updated.
type Project struct {
	ID          int64     `json:"id"`
	ClientID    int64     `json:"client_id"`
	ProjectName string    `json:"project_name"`
	StartDate   time.Time `json:"start_date"`
	Status      string    `json:"status"`
}
