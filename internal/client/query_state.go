package client

import (
	"fmt"
	"strings"

	"quiz-catalog-service/internal/domain"
)

// PageSize is the fixed page size the listing UI requests.
const PageSize = 15

// QueryState consolidates the search text and the difficulty filter and
// derives the canonical query for the catalog endpoint. The wire contract
// is inverted relative to the filter UI: a difficulty toggled OFF is the
// one transmitted, under not-in semantics, so the default all-on state
// emits no filter term at all.
type QueryState struct {
	searchText string
	included   map[domain.Difficulty]bool
}

func NewQueryState() *QueryState {
	included := make(map[domain.Difficulty]bool, len(domain.Difficulties))
	for _, d := range domain.Difficulties {
		included[d] = true
	}
	return &QueryState{included: included}
}

// SetSearchText replaces the current search text.
func (s *QueryState) SetSearchText(text string) {
	s.searchText = text
}

func (s *QueryState) SearchText() string {
	return s.searchText
}

// ToggleDifficulty flips whether the difficulty is included in results.
// Values outside the three-value domain are ignored.
func (s *QueryState) ToggleDifficulty(d domain.Difficulty) {
	if !d.Valid() {
		return
	}
	s.included[d] = !s.included[d]
}

// Included reports whether the difficulty is currently included.
func (s *QueryState) Included(d domain.Difficulty) bool {
	return s.included[d]
}

// Excluded returns the difficulties toggled off, in display order.
func (s *QueryState) Excluded() []domain.Difficulty {
	var excluded []domain.Difficulty
	for _, d := range domain.Difficulties {
		if !s.included[d] {
			excluded = append(excluded, d)
		}
	}
	return excluded
}

// Descriptor derives the structured query for the given page.
func (s *QueryState) Descriptor(page int) domain.QueryDescriptor {
	if page < 1 {
		page = 1
	}
	return domain.QueryDescriptor{
		Page:                 page,
		Limit:                PageSize,
		Keywords:             strings.Fields(s.searchText),
		ExcludedDifficulties: s.Excluded(),
	}
}

// QueryString encodes the state as the catalog endpoint's query string,
// e.g. "?page=2&limit=15&q=java+programming&filter=Hard,". Search words
// are '+'-joined; the filter list keeps its trailing comma.
func (s *QueryState) QueryString(page int) string {
	if page < 1 {
		page = 1
	}
	return fmt.Sprintf("?page=%d&limit=%d", page, PageSize) + s.Fingerprint()
}

// Fingerprint is the page-independent portion of the query string. The
// pager uses it to recognize responses that were issued under a filter
// state that has since changed.
func (s *QueryState) Fingerprint() string {
	var b strings.Builder
	if s.searchText != "" {
		b.WriteString("&q=")
		b.WriteString(strings.ReplaceAll(s.searchText, " ", "+"))
	}
	if excluded := s.Excluded(); len(excluded) > 0 {
		b.WriteString("&filter=")
		for _, d := range excluded {
			b.WriteString(string(d))
			b.WriteString(",")
		}
	}
	return b.String()
}
