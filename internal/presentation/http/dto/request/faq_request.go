package request

// FAQRequest represents an FAQ create or update request
type FAQRequest struct {
	Question  string `json:"question" binding:"required,min=1"`
	Answer    string `json:"answer" binding:"required,min=1"`
	Category  string `json:"category" binding:"omitempty,max=100"`
	SortOrder int    `json:"sort_order" binding:"min=0"`
	Published bool   `json:"published"`
}
