package store

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
)

// resetApplications resets the singleton so each test gets a fresh DB.
func resetApplications(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	// Override HOME so openApplicationsDB uses the temp dir.
	t.Setenv("HOME", dir)
	// Reset the singleton.
	applicationsDB = nil
	applicationsErr = nil
	applicationsOnce = sync.Once{}
	return filepath.Join(dir, ".go_autofill", "applications.db")
}

func TestAddApplication_Basic(t *testing.T) {
	resetApplications(t)
	ctx := context.Background()

	result, err := AddApplication(ctx, ApplicationAddInput{
		Company:    "Stripe",
		Role:       "Backend Engineer",
		URL:        "https://stripe.com/jobs/123",
		Status:     "applied",
		Notes:      "Applied via referral",
		MatchScore: 0.82,
	})
	if err != nil {
		t.Fatalf("AddApplication error: %v", err)
	}
	if result.ID <= 0 {
		t.Errorf("expected positive ID, got %d", result.ID)
	}
	if result.Message == "" {
		t.Error("expected non-empty message")
	}
}

func TestAddApplication_DefaultStatus(t *testing.T) {
	resetApplications(t)
	ctx := context.Background()

	if _, err := AddApplication(ctx, ApplicationAddInput{Company: "Acme", Role: "Intern"}); err != nil {
		t.Fatalf("AddApplication error: %v", err)
	}

	list, err := ListApplications(ctx, ApplicationListInput{Status: "applied"})
	if err != nil {
		t.Fatalf("ListApplications error: %v", err)
	}
	if list.Total != 1 {
		t.Errorf("Total = %d, want 1", list.Total)
	}
}

func TestAddApplication_MissingRequired(t *testing.T) {
	resetApplications(t)
	ctx := context.Background()

	if _, err := AddApplication(ctx, ApplicationAddInput{Company: "Only Company"}); err == nil {
		t.Error("expected error when role is missing")
	}
	if _, err := AddApplication(ctx, ApplicationAddInput{Role: "Only Role"}); err == nil {
		t.Error("expected error when company is missing")
	}
}

func TestAddApplication_InvalidStatus(t *testing.T) {
	resetApplications(t)
	ctx := context.Background()

	_, err := AddApplication(ctx, ApplicationAddInput{
		Company: "Acme", Role: "Intern", Status: "ghosted",
	})
	if err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestListApplications_FilterAndLimit(t *testing.T) {
	resetApplications(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := AddApplication(ctx, ApplicationAddInput{Company: "Acme", Role: "Intern"}); err != nil {
			t.Fatalf("AddApplication error: %v", err)
		}
	}
	if _, err := AddApplication(ctx, ApplicationAddInput{
		Company: "Beta", Role: "Analyst", Status: "interview",
	}); err != nil {
		t.Fatalf("AddApplication error: %v", err)
	}

	all, err := ListApplications(ctx, ApplicationListInput{})
	if err != nil {
		t.Fatalf("ListApplications error: %v", err)
	}
	if all.Total != 4 {
		t.Errorf("Total = %d, want 4", all.Total)
	}

	interviews, err := ListApplications(ctx, ApplicationListInput{Status: "interview"})
	if err != nil {
		t.Fatalf("ListApplications error: %v", err)
	}
	if len(interviews.Applications) != 1 || interviews.Applications[0].Company != "Beta" {
		t.Errorf("interview filter returned %+v", interviews.Applications)
	}

	limited, err := ListApplications(ctx, ApplicationListInput{Limit: 2})
	if err != nil {
		t.Fatalf("ListApplications error: %v", err)
	}
	if len(limited.Applications) != 2 {
		t.Errorf("len = %d, want 2", len(limited.Applications))
	}
	if limited.Total != 4 {
		t.Errorf("Total = %d, want 4 regardless of limit", limited.Total)
	}
}

func TestListApplications_EmptyIsNotNil(t *testing.T) {
	resetApplications(t)

	list, err := ListApplications(context.Background(), ApplicationListInput{})
	if err != nil {
		t.Fatalf("ListApplications error: %v", err)
	}
	if list.Applications == nil {
		t.Error("Applications must be an empty slice, not nil")
	}
}

func TestUpdateApplication(t *testing.T) {
	resetApplications(t)
	ctx := context.Background()

	added, err := AddApplication(ctx, ApplicationAddInput{Company: "Acme", Role: "Intern"})
	if err != nil {
		t.Fatalf("AddApplication error: %v", err)
	}

	if _, err := UpdateApplication(ctx, ApplicationUpdateInput{
		ID: added.ID, Status: "offer", Notes: "Verbal offer received",
	}); err != nil {
		t.Fatalf("UpdateApplication error: %v", err)
	}

	list, err := ListApplications(ctx, ApplicationListInput{Status: "offer"})
	if err != nil {
		t.Fatalf("ListApplications error: %v", err)
	}
	if len(list.Applications) != 1 {
		t.Fatalf("expected 1 offer, got %+v", list.Applications)
	}
	if list.Applications[0].Notes != "Verbal offer received" {
		t.Errorf("Notes = %q", list.Applications[0].Notes)
	}
}

func TestUpdateApplication_Validation(t *testing.T) {
	resetApplications(t)
	ctx := context.Background()

	if _, err := UpdateApplication(ctx, ApplicationUpdateInput{Status: "offer"}); err == nil {
		t.Error("expected error when id is missing")
	}
	if _, err := UpdateApplication(ctx, ApplicationUpdateInput{ID: 1}); err == nil {
		t.Error("expected error when neither status nor notes provided")
	}
	if _, err := UpdateApplication(ctx, ApplicationUpdateInput{ID: 1, Status: "bogus"}); err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestApplicationStats(t *testing.T) {
	resetApplications(t)
	ctx := context.Background()

	for _, status := range []string{"applied", "applied", "interview", "offer"} {
		if _, err := AddApplication(ctx, ApplicationAddInput{
			Company: "Acme", Role: "Intern", Status: status,
		}); err != nil {
			t.Fatalf("AddApplication error: %v", err)
		}
	}

	stats, err := ApplicationStats(ctx)
	if err != nil {
		t.Fatalf("ApplicationStats error: %v", err)
	}
	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}
	if stats.ByStatus["applied"] != 2 {
		t.Errorf("applied = %d, want 2", stats.ByStatus["applied"])
	}
	// 2 of 4 applications moved past "applied".
	if stats.ResponseRate != 0.5 {
		t.Errorf("ResponseRate = %v, want 0.5", stats.ResponseRate)
	}
}

func TestApplicationStats_Empty(t *testing.T) {
	resetApplications(t)

	stats, err := ApplicationStats(context.Background())
	if err != nil {
		t.Fatalf("ApplicationStats error: %v", err)
	}
	if stats.Total != 0 || stats.ResponseRate != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
}
