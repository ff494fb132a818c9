package models

import "time"

// CivicResponse is one reader submission from the widget's response
// form.
type CivicResponse struct {
	ID           string    `db:"id" json:"id"`
	Message      string    `db:"message" json:"message"`
	ArticleURL   string    `db:"article_url" json:"article_url,omitempty"`
	ArticleTitle string    `db:"article_title" json:"article_title,omitempty"`
	Email        string    `db:"email" json:"email,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// ResponseFilter captures listing criteria for reader responses.
type ResponseFilter struct {
	ArticleURL string
	Page       int
	PageSize   int
}
