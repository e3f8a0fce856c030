package entity

import "time"

// FAQ represents one entry of the public FAQ content
type FAQ struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	Category  string    `gorm:"size:100" json:"category"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	Published bool      `gorm:"not null;default:false" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the FAQ model
func (FAQ) TableName() string {
	return "faqs"
}
