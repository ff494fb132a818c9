package dto

// FetchArticleRequest asks for a Planet Detroit article by public URL.
// Refresh evicts any cached copy so edits made in WordPress show up.
type FetchArticleRequest struct {
	URL     string `json:"url" validate:"required,url"`
	Refresh bool   `json:"refresh"`
}

// AnalyzeArticleRequest forwards article text to the external
// analyzer.
type AnalyzeArticleRequest struct {
	ArticleURL  string `json:"article_url" validate:"omitempty,url"`
	ArticleText string `json:"article_text" validate:"required"`
}

// AgencySuggestions maps requested issue tags to agency names.
type AgencySuggestions struct {
	Issues   []string `json:"issues"`
	Agencies []string `json:"agencies"`
}
