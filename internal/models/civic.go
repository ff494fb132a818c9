package models

import "time"

// Meeting represents a public meeting a reader can attend.
//
// StartDatetime stays a string on purpose: the widget renders whatever
// the record carries, and unparseable values degrade to a literal
// "Invalid Date" instead of failing the whole box.
type Meeting struct {
	ID                        string    `db:"id" json:"id,omitempty"`
	Title                     string    `db:"title" json:"title"`
	Agency                    string    `db:"agency" json:"agency,omitempty"`
	StartDatetime             string    `db:"start_datetime" json:"start_datetime,omitempty"`
	AgendaURL                 string    `db:"agenda_url" json:"agenda_url,omitempty"`
	DetailsURL                string    `db:"details_url" json:"details_url,omitempty"`
	VirtualURL                string    `db:"virtual_url" json:"virtual_url,omitempty"`
	LocationName              string    `db:"location_name" json:"location_name,omitempty"`
	LocationAddress           string    `db:"location_address" json:"location_address,omitempty"`
	LocationCity              string    `db:"location_city" json:"location_city,omitempty"`
	PublicCommentInstructions string    `db:"public_comment_instructions" json:"public_comment_instructions,omitempty"`
	CreatedAt                 time.Time `db:"created_at" json:"created_at,omitempty"`
}

// CommentPeriod represents an open regulatory comment window.
// DaysRemaining is a pointer because zero is a real value ("0 days
// left") distinct from absent.
type CommentPeriod struct {
	ID            string    `db:"id" json:"id,omitempty"`
	Title         string    `db:"title" json:"title"`
	Agency        string    `db:"agency" json:"agency,omitempty"`
	EndDate       string    `db:"end_date" json:"end_date,omitempty"`
	DaysRemaining *int      `db:"days_remaining" json:"days_remaining,omitempty"`
	CommentURL    string    `db:"comment_url" json:"comment_url,omitempty"`
	Description   string    `db:"description" json:"description,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at,omitempty"`
}

// Official represents an elected or appointed representative.
type Official struct {
	ID        string    `db:"id" json:"id,omitempty"`
	Name      string    `db:"name" json:"name"`
	Party     string    `db:"party" json:"party,omitempty"`
	Office    string    `db:"office" json:"office,omitempty"`
	District  string    `db:"district" json:"district,omitempty"`
	Email     string    `db:"email" json:"email,omitempty"`
	Phone     string    `db:"phone" json:"phone,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at,omitempty"`
}

// Action represents a standalone civic action with an optional link.
type Action struct {
	ID          string    `db:"id" json:"id,omitempty"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description,omitempty"`
	URL         string    `db:"url" json:"url,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at,omitempty"`
}

// Organization represents a community group readers can follow.
type Organization struct {
	ID        string    `db:"id" json:"id,omitempty"`
	Name      string    `db:"name" json:"name"`
	URL       string    `db:"url" json:"url,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at,omitempty"`
}

// CatalogFilter captures the shared list filters for catalog endpoints.
type CatalogFilter struct {
	Agency   string
	Search   string
	Page     int
	PageSize int
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
