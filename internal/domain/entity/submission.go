package entity

import (
	"time"

	"github.com/relocaid/relocaid-api/internal/domain/enum"
)

// Submission represents an inbound inquiry from the public contact form
type Submission struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:100;uniqueIndex;not null" json:"reference"`

	FirstName string  `gorm:"size:255;not null" json:"first_name"`
	LastName  string  `gorm:"size:255;not null" json:"last_name"`
	Email     string  `gorm:"size:255;not null" json:"email"`
	Phone     *string `gorm:"size:50" json:"phone,omitempty"`

	Street     *string `gorm:"size:255" json:"street,omitempty"`
	City       *string `gorm:"size:100" json:"city,omitempty"`
	PostalCode *string `gorm:"size:20" json:"postal_code,omitempty"`
	Country    *string `gorm:"size:100" json:"country,omitempty"`

	ServiceType string                `gorm:"size:100" json:"service_type"`
	Message     string                `gorm:"type:text" json:"message"`
	Status      enum.SubmissionStatus `gorm:"size:20;default:'new';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Invoices []Invoice `gorm:"foreignKey:SubmissionID" json:"-"`
}

// FullName returns the submitter's display name
func (s *Submission) FullName() string {
	return s.FirstName + " " + s.LastName
}

// PostalAddress renders the structured address fields as free text for
// the invoice client snapshot.
func (s *Submission) PostalAddress() string {
	var addr string
	if s.Street != nil {
		addr = *s.Street
	}
	line2 := ""
	if s.PostalCode != nil {
		line2 = *s.PostalCode
	}
	if s.City != nil {
		if line2 != "" {
			line2 += " "
		}
		line2 += *s.City
	}
	if line2 != "" {
		if addr != "" {
			addr += "\n"
		}
		addr += line2
	}
	if s.Country != nil {
		if addr != "" {
			addr += "\n"
		}
		addr += *s.Country
	}
	return addr
}

// TableName returns the table name for the Submission model
func (Submission) TableName() string {
	return "submissions"
}
