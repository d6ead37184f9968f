package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/blackbird-crm/crm-api/internal/domain"
	"github.com/blackbird-crm/crm-api/internal/service"
	"github.com/blackbird-crm/crm-api/internal/store"
)

// RegisterRequest defines the payload for user registration.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest defines the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued session token and the email it was
// issued for.
type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// ClientRequest defines the payload for creating or updating a client.
// The ID is only meaningful on update, where it must match the path id.
type ClientRequest struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"client_name"`
	Status      string `json:"status"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// ProjectRequest defines the payload for creating or updating a project.
// Any supplied start date is ignored; the server controls it.
type ProjectRequest struct {
	ClientID    int64  `json:"client_id"`
	ProjectName string `json:"project_name"`
	Status      string `json:"status"`
}

// CommentRequest defines the payload for creating or updating a comment.
type CommentRequest struct {
	ClientID    int64  `json:"client_id"`
	ProjectID   int64  `json:"project_id"`
	CommentText string `json:"comment_text"`
}

// TransactionRequest defines the payload for creating or updating a
// transaction. The due date is ignored on create and honored on update.
type TransactionRequest struct {
	ClientID          int64           `json:"client_id"`
	ProjectID         int64           `json:"project_id"`
	Amount            decimal.Decimal `json:"amount"`
	DueAmount         decimal.Decimal `json:"due_amount"`
	DueDate           time.Time       `json:"due_date"`
	TransactionStatus string          `json:"transaction_status"`
	Currency          string          `json:"currency"`
}

// ProjectListItem is the list projection of a project: the start date is
// reduced to a calendar day.
type ProjectListItem struct {
	ID          int64  `json:"id"`
	ClientID    int64  `json:"client_id"`
	ProjectName string `json:"project_name"`
	StartDate   string `json:"start_date"`
	Status      string `json:"status"`
	ClientName  string `json:"client_name"`
}

// CommentListItem is the list projection of a comment. The created date is
// deliberately absent; it only appears in the per-project listing and the
// single-comment responses.
type CommentListItem struct {
	ID          int64  `json:"id"`
	ClientID    int64  `json:"client_id"`
	ProjectID   int64  `json:"project_id"`
	CommentText string `json:"comment_text"`
	ClientName  string `json:"client_name"`
	ProjectName string `json:"project_name"`
}

// ClientDetailsResponse aggregates a client with projections of everything
// attached to it.
type ClientDetailsResponse struct {
	ID           int64                      `json:"id"`
	ClientName   string                     `json:"client_name"`
	Status       string                     `json:"status"`
	Email        string                     `json:"email"`
	PhoneNumber  string                     `json:"phone_number"`
	Projects     []ClientDetailsProject     `json:"projects"`
	Comments     []ClientDetailsComment     `json:"comments"`
	Transactions []ClientDetailsTransaction `json:"transactions"`
}

// ClientDetailsProject is the project projection inside a details response.
type ClientDetailsProject struct {
	ID          int64     `json:"id"`
	ClientID    int64     `json:"client_id"`
	ProjectName string    `json:"project_name"`
	Status      string    `json:"status"`
	StartDate   time.Time `json:"start_date"`
}

// ClientDetailsComment is the comment projection inside a details response.
type ClientDetailsComment struct {
	ID          int64     `json:"id"`
	ClientID    int64     `json:"client_id"`
	CommentText string    `json:"comment_text"`
	CreatedDate time.Time `json:"created_date"`
}

// ClientDetailsTransaction is the transaction projection inside a details
// response. Only the amount is exposed.
type ClientDetailsTransaction struct {
	ID       int64           `json:"id"`
	ClientID int64           `json:"client_id"`
	Amount   decimal.Decimal `json:"amount"`
}

func newProjectListItems(projects []store.ProjectWithClient) []ProjectListItem {
	items := make([]ProjectListItem, 0, len(projects))
	for _, p := range projects {
		items = append(items, ProjectListItem{
			ID:          p.ID,
			ClientID:    p.ClientID,
			ProjectName: p.ProjectName,
			StartDate:   p.StartDate.Format("2006-01-02"),
			Status:      p.Status,
			ClientName:  p.ClientName,
		})
	}
	return items
}

func newCommentListItems(comments []store.CommentWithNames) []CommentListItem {
	items := make([]CommentListItem, 0, len(comments))
	for _, c := range comments {
		items = append(items, CommentListItem{
			ID:          c.ID,
			ClientID:    c.ClientID,
			ProjectID:   c.ProjectID,
			CommentText: c.CommentText,
			ClientName:  c.ClientName,
			ProjectName: c.ProjectName,
		})
	}
	return items
}

func newClientDetailsResponse(details *service.ClientDetails) ClientDetailsResponse {
	response := ClientDetailsResponse{
		ID:           details.Client.ID,
		ClientName:   details.Client.ClientName,
		Status:       details.Client.Status,
		Email:        details.Client.Email,
		PhoneNumber:  details.Client.PhoneNumber,
		Projects:     make([]ClientDetailsProject, 0, len(details.Projects)),
		Comments:     make([]ClientDetailsComment, 0, len(details.Comments)),
		Transactions: make([]ClientDetailsTransaction, 0, len(details.Transactions)),
	}

	for _, p := range details.Projects {
		response.Projects = append(response.Projects, ClientDetailsProject{
			ID:          p.ID,
			ClientID:    p.ClientID,
			ProjectName: p.ProjectName,
			Status:      p.Status,
			StartDate:   p.StartDate,
		})
	}
	for _, c := range details.Comments {
		response.Comments = append(response.Comments, ClientDetailsComment{
			ID:          c.ID,
			ClientID:    c.ClientID,
			CommentText: c.CommentText,
			CreatedDate: c.CreatedDate,
		})
	}
	for _, t := range details.Transactions {
		response.Transactions = append(response.Transactions, ClientDetailsTransaction{
			ID:       t.ID,
			ClientID: t.ClientID,
			Amount:   t.Amount,
		})
	}

	return response
}

// clientListResponse keeps list output a JSON array even when empty.
func clientListResponse(clients []domain.Client) []domain.Client {
	if clients == nil {
		return []domain.Client{}
	}
	return clients
}
