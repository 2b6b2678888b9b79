package newsapimodels

import (
	"time"

	"github.com/pkg/errors"
	apimodels "hr-admin-backend/models/api"
	dbmodels "hr-admin-backend/models/db"
)

type NewsData struct {
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	ImageURL string   `json:"image_url"`
	Tags     []string `json:"tags"`
}

func (d NewsData) Validate() error {
	if d.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

type NewsFilter struct {
	apimodels.Pagination
	Status   string `json:"status"`
	AuthorID string `json:"author_id"`
	Category string `json:"category"`
	Search   string `json:"search"`
}

type NewsView struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Slug           string     `json:"slug"`
	Summary        string     `json:"summary,omitempty"`
	Content        string     `json:"content,omitempty"`
	Category       string     `json:"category,omitempty"`
	ImageURL       string     `json:"image_url,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	Status         string     `json:"status"`
	AuthorID       string     `json:"author_id"`
	AuthorName     string     `json:"author_name,omitempty"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	RejectionNotes string     `json:"rejection_notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// SubmitResult reports which path a submission took.
type SubmitResult struct {
	Status string `json:"status"` // pending or published
}

func NewsConvert(rec dbmodels.News) NewsView {
	view := NewsView{
		ID:          rec.ID,
		Title:       rec.Title,
		Slug:        rec.Slug,
		Summary:     rec.Summary,
		Content:     rec.Content,
		Category:    rec.Category,
		ImageURL:    rec.ImageURL,
		Tags:        rec.Tags,
		Status:      string(rec.Status),
		AuthorID:    rec.AuthorID,
		PublishedAt: rec.PublishedAt,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.Author != nil {
		view.AuthorName = rec.Author.Name
	}
	if rec.RejectionNotes != nil {
		view.RejectionNotes = *rec.RejectionNotes
	}
	return view
}
