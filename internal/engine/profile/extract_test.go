package profile

import (
	"strings"
	"testing"
)

const sampleResume = `Jane Smith
jane.smith@example.com
+91-9876543210
IIT Mandi
B.Tech Computer Science`

func TestExtractEntities_Sample(t *testing.T) {
	e := ExtractEntities(sampleResume, nil)

	if e.Name != "Jane Smith" {
		t.Errorf("Name = %q, want %q", e.Name, "Jane Smith")
	}
	if e.Email != "jane.smith@example.com" {
		t.Errorf("Email = %q, want %q", e.Email, "jane.smith@example.com")
	}
	if e.Phone != "+91-9876543210" {
		t.Errorf("Phone = %q, want %q", e.Phone, "+91-9876543210")
	}
	if e.University != "IIT Mandi" {
		t.Errorf("University = %q, want %q", e.University, "IIT Mandi")
	}
	if !strings.HasPrefix(e.Degree, "B.Tech") {
		t.Errorf("Degree = %q, want B.Tech prefix", e.Degree)
	}
}

func TestExtractEntities_Empty(t *testing.T) {
	e := ExtractEntities("", nil)
	if e != (Entities{}) {
		t.Errorf("empty input should yield empty entities, got %+v", e)
	}
}

func TestExtractEntities_NameSkipsContactLines(t *testing.T) {
	text := "Email: someone@example.com\nLinkedIn Profile Here\nJohn Doe\nSome City"
	e := ExtractEntities(text, nil)
	if e.Name != "John Doe" {
		t.Errorf("Name = %q, want %q", e.Name, "John Doe")
	}
}

func TestExtractEntities_NameSkipsSectionHeadings(t *testing.T) {
	text := "Objective Statement\nSummary Of Qualifications\nAlice Wonder\n"
	e := ExtractEntities(text, nil)
	if e.Name != "Alice Wonder" {
		t.Errorf("Name = %q, want %q", e.Name, "Alice Wonder")
	}
}

func TestExtractEntities_NameOnlyInFirstTenLines(t *testing.T) {
	text := strings.Repeat("x\n", 12) + "Jane Smith\n"
	e := ExtractEntities(text, nil)
	if e.Name != "" {
		t.Errorf("name past line 10 should not be found, got %q", e.Name)
	}
}

func TestExtractEntities_NameWithRecognizer(t *testing.T) {
	text := "Dr. Jane Smith\njane@example.com"
	e := ExtractEntities(text, HeuristicRecognizer{})
	if e.Name != "Jane Smith" {
		t.Errorf("Name = %q, want %q", e.Name, "Jane Smith")
	}
}

func TestExtractEntities_PhonePatternOrder(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"indian with code", "Call +91 9876543210 anytime", "+91 9876543210"},
		{"us format", "Reach me at +1 555-123-4567", "+1 555-123-4567"},
		{"bare indian", "phone 9876543210", "9876543210"},
		{"bare ten digit", "id 1234567890", "1234567890"},
		{"none", "no number here", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ExtractEntities(tt.text, nil)
			if e.Phone != tt.want {
				t.Errorf("Phone = %q, want %q", e.Phone, tt.want)
			}
		})
	}
}

func TestExtractEntities_UniversityPatterns(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Indian Institute of Technology Delhi, 2020", "Indian Institute of Technology Delhi"},
		{"studied at NIT Trichy in 2019", "NIT Trichy"},
		{"Graduated from Stanford University\n", "Stanford University"},
	}
	for _, tt := range tests {
		e := ExtractEntities(tt.text, nil)
		if !strings.Contains(e.University, tt.want) {
			t.Errorf("University = %q, want containing %q", e.University, tt.want)
		}
	}
}

func TestExtractEntities_GPA(t *testing.T) {
	e := ExtractEntities("CGPA: 8.75 out of 10", nil)
	if e.GPA != "8.75" {
		t.Errorf("GPA = %q, want %q", e.GPA, "8.75")
	}
}

func TestBuild_Idempotent(t *testing.T) {
	p1 := Build(sampleResume, nil)
	p2 := Build(sampleResume, nil)
	if p1.Name != p2.Name || p1.Email != p2.Email || len(p1.Skills) != len(p2.Skills) {
		t.Error("Build should be deterministic for the same input")
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	p := Build("", nil)
	if p.Name != "" || p.Email != "" {
		t.Errorf("empty input should yield empty fields, got %+v", p)
	}
	if p.Skills == nil || p.Experience == nil || p.Projects == nil {
		t.Error("slices must be non-nil")
	}
	if p.ExtractedText != "" {
		t.Errorf("ExtractedText = %q", p.ExtractedText)
	}
}
