package domain

// Citation is a quoted excerpt plus the label of the document it came from
type Citation struct {
	Source string `json:"source"`
	Text   string `json:"text"`
}

// SearchResult represents one completed search as returned by the search service.
// Citations are kept in the order the service returned them.
type SearchResult struct {
	Query     string     `json:"query"`
	Response  string     `json:"response"`
	Citations []Citation `json:"citations"`
}

// Submission is a single search request issued from the query box
type Submission struct {
	Seq   uint64 // monotonically increasing per view
	Query string
}
