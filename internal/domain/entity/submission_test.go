package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestSubmissionFullName(t *testing.T) {
	s := &Submission{FirstName: "Amara", LastName: "Osei"}
	assert.Equal(t, "Amara Osei", s.FullName())
}

func TestSubmissionPostalAddress(t *testing.T) {
	tests := []struct {
		name       string
		submission Submission
		want       string
	}{
		{
			name: "full address",
			submission: Submission{
				Street:     strPtr("Hauptstrasse 12"),
				City:       strPtr("Berlin"),
				PostalCode: strPtr("10115"),
				Country:    strPtr("Germany"),
			},
			want: "Hauptstrasse 12\n10115 Berlin\nGermany",
		},
		{
			name: "city without postal code",
			submission: Submission{
				Street: strPtr("Hauptstrasse 12"),
				City:   strPtr("Berlin"),
			},
			want: "Hauptstrasse 12\nBerlin",
		},
		{
			name: "country only",
			submission: Submission{
				Country: strPtr("Germany"),
			},
			want: "Germany",
		},
		{
			name: "empty",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.submission.PostalAddress())
		})
	}
}
