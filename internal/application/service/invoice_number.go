package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const numberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NumberExistsFunc reports whether a candidate number is already taken.
type NumberExistsFunc func(ctx context.Context, number string) (bool, error)

// NumberGenerator produces unique document numbers of the form
// <prefix>-YYYYMMDD-XXXX. When a source reference is supplied, the source
// prefix is rewritten instead, so an invoice made from submission
// REF-20240101-AB12 becomes INV-20240101-AB12.
type NumberGenerator struct {
	prefix       string
	sourcePrefix string
	exists       NumberExistsFunc
	now          func() time.Time
}

// NewInvoiceNumberGenerator creates a generator for invoice numbers
func NewInvoiceNumberGenerator(exists NumberExistsFunc) *NumberGenerator {
	return &NumberGenerator{
		prefix:       "INV",
		sourcePrefix: "REF",
		exists:       exists,
		now:          time.Now,
	}
}

// NewSubmissionReferenceGenerator creates a generator for submission references
func NewSubmissionReferenceGenerator(exists NumberExistsFunc) *NumberGenerator {
	return &NumberGenerator{
		prefix: "REF",
		exists: exists,
		now:    time.Now,
	}
}

// FromSource derives a number from a source reference by swapping the
// prefix. Sources that do not carry the expected prefix are returned
// unchanged with ok=false.
func (g *NumberGenerator) FromSource(source string) (string, bool) {
	if g.sourcePrefix == "" || !strings.HasPrefix(source, g.sourcePrefix+"-") {
		return source, false
	}
	return g.prefix + strings.TrimPrefix(source, g.sourcePrefix), true
}

// Generate returns a fresh number that did not exist at the time of the
// check. Uniqueness is ultimately enforced by the database index; the
// existence checks only keep collisions rare.
func (g *NumberGenerator) Generate(ctx context.Context) (string, error) {
	datePart := g.now().Format("20060102")

	for attempt := 0; attempt < 5; attempt++ {
		candidate := fmt.Sprintf("%s-%s-%s", g.prefix, datePart, randomBase36(4))
		taken, err := g.exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	// Timestamp fallback, unique down to the millisecond
	suffix := strings.ToUpper(strconv.FormatInt(g.now().UnixMilli(), 36))
	return fmt.Sprintf("%s-%s-%s", g.prefix, datePart, suffix), nil
}

func randomBase36(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = numberAlphabet[rand.IntN(len(numberAlphabet))]
	}
	return string(b)
}
