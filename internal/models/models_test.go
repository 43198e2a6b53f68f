package models

import (
	"errors"
	"testing"
)

// ============================================================================
// Status Tests
// ============================================================================

func TestStatuses_BoardOrder(t *testing.T) {
	want := []Status{"pending", "applied", "aptitude", "interview", "passed", "rejected"}
	got := Statuses()
	if len(got) != len(want) {
		t.Fatalf("Expected %d statuses, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Statuses()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"pending", StatusPending, false},
		{"  Interview ", StatusInterview, false},
		{"REJECTED", StatusRejected, false},
		{"offer", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidStatus) {
				t.Errorf("ParseStatus(%q) error = %v, want ErrInvalidStatus", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStatus(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStatus_ActiveAndClosed(t *testing.T) {
	if StatusPending.IsActive() {
		t.Error("pending should not be active")
	}
	if !StatusAptitude.IsActive() || !StatusInterview.IsActive() || !StatusApplied.IsActive() {
		t.Error("applied, aptitude and interview should be active")
	}
	if !StatusPassed.IsClosed() || !StatusRejected.IsClosed() {
		t.Error("passed and rejected should be closed")
	}
	if Status("bogus").IsActive() {
		t.Error("unknown status should not be active")
	}
}

func TestParsePositionType(t *testing.T) {
	if p, err := ParsePositionType(""); err != nil || p != PositionTypeNone {
		t.Errorf("empty position type should be valid, got %q, %v", p, err)
	}
	if p, err := ParsePositionType("New-Grad"); err != nil || p != PositionTypeNewGrad {
		t.Errorf("ParsePositionType(New-Grad) = %q, %v", p, err)
	}
	if _, err := ParsePositionType("contractor"); !errors.Is(err, ErrInvalidPositionType) {
		t.Errorf("expected ErrInvalidPositionType, got %v", err)
	}
}

// ============================================================================
// Struct Tests
// ============================================================================

func TestCoverLetterSection_OverLimit(t *testing.T) {
	limit := 3
	s := CoverLetterSection{Content: "abcd", MaxLength: &limit}
	if !s.OverLimit() {
		t.Error("Expected section over its limit")
	}
	s.Content = "한국어"
	if s.OverLimit() {
		t.Error("Limit counts characters, not bytes")
	}
	s.MaxLength = nil
	s.Content = "anything"
	if s.OverLimit() {
		t.Error("Section without a limit is never over it")
	}
}

func TestCompany_CloneIsDeep(t *testing.T) {
	limit := 100
	c := &Company{
		ID:   "c1",
		Name: "Acme",
		CoverLetterSections: []CoverLetterSection{
			{ID: "s1", Title: "Why us", MaxLength: &limit},
		},
	}

	cp := c.Clone()
	cp.Name = "Other"
	cp.CoverLetterSections[0].Title = "Changed"
	*cp.CoverLetterSections[0].MaxLength = 5

	if c.Name != "Acme" {
		t.Error("Clone shares name")
	}
	if c.CoverLetterSections[0].Title != "Why us" {
		t.Error("Clone shares sections")
	}
	if *c.CoverLetterSections[0].MaxLength != 100 {
		t.Error("Clone shares max length pointer")
	}
}

func TestCompanyUpdate_IsEmpty(t *testing.T) {
	if !(CompanyUpdate{}).IsEmpty() {
		t.Error("zero update should be empty")
	}
	if StatusUpdate(StatusInterview).IsEmpty() {
		t.Error("status update should not be empty")
	}
}

func TestDefaultColumnConfigs_OnePerStatus(t *testing.T) {
	cfg := DefaultColumnConfigs()
	if len(cfg) != len(Statuses()) {
		t.Fatalf("Expected %d column configs, got %d", len(Statuses()), len(cfg))
	}
	for _, s := range Statuses() {
		c, ok := cfg[s]
		if !ok {
			t.Errorf("missing column config for %s", s)
			continue
		}
		if c.Title == "" || c.Status != s {
			t.Errorf("column config for %s is malformed: %+v", s, c)
		}
	}
}
