package profile

import (
	"strings"
	"testing"
)

const sectionedResume = `Jane Smith

EXPERIENCE
Software Engineering Intern at Acme
Built company tooling in Go
Shipped a metrics dashboard
Data Analyst at Beta Corp
Cleaned and modeled sales data

PROJECTS
Resume Parser
• A text extraction pipeline
• handles messy PDFs
Chat Server
• Concurrent message broker

EDUCATION
IIT Mandi
`

func TestExtractExperience(t *testing.T) {
	entries := extractExperience(sectionedResume)
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2: %+v", len(entries), entries)
	}
	if entries[0].Role != "Software Engineering Intern at Acme" {
		t.Errorf("Role = %q", entries[0].Role)
	}
	if !strings.Contains(entries[0].Description, "company tooling") {
		t.Errorf("Description = %q", entries[0].Description)
	}
	if entries[1].Role != "Data Analyst at Beta Corp" {
		t.Errorf("Role = %q", entries[1].Role)
	}
}

func TestExtractExperience_StopsAtNextSection(t *testing.T) {
	entries := extractExperience(sectionedResume)
	for _, e := range entries {
		if strings.Contains(e.Role, "Resume Parser") || strings.Contains(e.Description, "Resume Parser") {
			t.Errorf("experience leaked into projects: %+v", e)
		}
	}
}

func TestExtractProjects(t *testing.T) {
	entries := extractProjects(sectionedResume)
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2: %+v", len(entries), entries)
	}
	if entries[0].Title != "Resume Parser" {
		t.Errorf("Title = %q", entries[0].Title)
	}
	if !strings.Contains(entries[0].Description, "handles messy PDFs") {
		t.Errorf("bullet lines should accumulate into description, got %q", entries[0].Description)
	}
	if entries[1].Title != "Chat Server" {
		t.Errorf("Title = %q", entries[1].Title)
	}
}

func TestExtractSections_Missing(t *testing.T) {
	if got := extractExperience("just a name\nand an email"); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
	if got := extractProjects("just a name\nand an email"); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}
