package dto

// CreateResponseRequest is the payload posted by the widget's reader
// response form on published pages.
type CreateResponseRequest struct {
	Message      string `json:"message" validate:"required"`
	ArticleURL   string `json:"article_url" validate:"omitempty,url"`
	ArticleTitle string `json:"article_title"`
	Email        string `json:"email" validate:"omitempty,email"`
}

// ListResponsesRequest captures the gated listing filters.
type ListResponsesRequest struct {
	ArticleURL string `form:"article_url"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}
