package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/relocaid/relocaid-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// parseID reads a numeric path parameter
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// parseDecimal converts a string field into a decimal, collecting a field
// error on malformed input.
func parseDecimal(field, value string, errs *[]apperror.FieldError) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		*errs = append(*errs, apperror.FieldError{
			Field:   field,
			Message: "must be a decimal number",
		})
		return decimal.Zero
	}
	return d
}

// parseDate converts a YYYY-MM-DD field into a time, collecting a field
// error on malformed input. Empty input yields nil.
func parseDate(field, value string, errs *[]apperror.FieldError) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		*errs = append(*errs, apperror.FieldError{
			Field:   field,
			Message: "must be a date in YYYY-MM-DD format",
		})
		return nil
	}
	return &t
}
