package client

import (
	"testing"

	"quiz-catalog-service/internal/domain"
)

func TestQueryStringDefault(t *testing.T) {
	state := NewQueryState()
	if got := state.QueryString(1); got != "?page=1&limit=15" {
		t.Fatalf("unexpected query string %q", got)
	}
}

func TestQueryStringSearchText(t *testing.T) {
	state := NewQueryState()
	state.SetSearchText("test")

	if got := state.QueryString(1); got != "?page=1&limit=15&q=test" {
		t.Fatalf("unexpected query string %q", got)
	}
	if got := state.QueryString(2); got != "?page=2&limit=15&q=test" {
		t.Fatalf("unexpected query string %q", got)
	}
}

func TestQueryStringToggleEasy(t *testing.T) {
	state := NewQueryState()
	state.ToggleDifficulty(domain.DifficultyEasy)

	if state.Included(domain.DifficultyEasy) {
		t.Fatalf("easy should be excluded after toggle")
	}
	if got := state.QueryString(1); got != "?page=1&limit=15&filter=Easy," {
		t.Fatalf("unexpected query string %q", got)
	}
}

func TestQueryStringToggleEasyAndHard(t *testing.T) {
	state := NewQueryState()
	state.ToggleDifficulty(domain.DifficultyEasy)
	state.ToggleDifficulty(domain.DifficultyHard)

	if got := state.QueryString(1); got != "?page=1&limit=15&filter=Easy,Hard," {
		t.Fatalf("unexpected query string %q", got)
	}
}

func TestQueryStringKeywordsAndFilter(t *testing.T) {
	state := NewQueryState()
	state.ToggleDifficulty(domain.DifficultyHard)
	state.SetSearchText("java programming")

	if got := state.QueryString(1); got != "?page=1&limit=15&q=java+programming&filter=Hard," {
		t.Fatalf("unexpected query string %q", got)
	}
}

func TestQueryStringNumericSearchText(t *testing.T) {
	state := NewQueryState()
	state.SetSearchText("1")

	if got := state.QueryString(1); got != "?page=1&limit=15&q=1" {
		t.Fatalf("unexpected query string %q", got)
	}
}

func TestToggleRoundTrip(t *testing.T) {
	state := NewQueryState()
	state.ToggleDifficulty(domain.DifficultyMedium)
	state.ToggleDifficulty(domain.DifficultyMedium)

	if !state.Included(domain.DifficultyMedium) {
		t.Fatalf("double toggle should restore inclusion")
	}
	if excluded := state.Excluded(); len(excluded) != 0 {
		t.Fatalf("expected no exclusions, got %v", excluded)
	}
	if got := state.QueryString(1); got != "?page=1&limit=15" {
		t.Fatalf("unexpected query string %q", got)
	}
}

func TestToggleUnknownDifficultyIsNoop(t *testing.T) {
	state := NewQueryState()
	state.ToggleDifficulty(domain.Difficulty("Insane"))

	if got := state.QueryString(1); got != "?page=1&limit=15" {
		t.Fatalf("out-of-domain toggle must not affect the query, got %q", got)
	}
}

func TestExcludeEverything(t *testing.T) {
	state := NewQueryState()
	for _, d := range domain.Difficulties {
		state.ToggleDifficulty(d)
	}

	if got := state.QueryString(1); got != "?page=1&limit=15&filter=Easy,Medium,Hard," {
		t.Fatalf("unexpected query string %q", got)
	}
}

func TestDescriptor(t *testing.T) {
	state := NewQueryState()
	state.SetSearchText("java programming")
	state.ToggleDifficulty(domain.DifficultyHard)

	desc := state.Descriptor(3)
	if desc.Page != 3 || desc.Limit != PageSize {
		t.Fatalf("unexpected paging: %+v", desc)
	}
	if len(desc.Keywords) != 2 || desc.Keywords[0] != "java" {
		t.Fatalf("unexpected keywords: %v", desc.Keywords)
	}
	if len(desc.ExcludedDifficulties) != 1 || desc.ExcludedDifficulties[0] != domain.DifficultyHard {
		t.Fatalf("unexpected exclusions: %v", desc.ExcludedDifficulties)
	}
}
