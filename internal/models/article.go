package models

// Article holds the title and plain text of a Planet Detroit story
// fetched from the WordPress REST API.
type Article struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Date  string `json:"date,omitempty"`
	Text  string `json:"text"`
}
