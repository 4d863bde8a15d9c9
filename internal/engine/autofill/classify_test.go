package autofill

import "testing"

func TestClassify_KnownFields(t *testing.T) {
	tests := []struct {
		fieldName string
		label     string
		want      Category
	}{
		{"full_name", "Full Name", CategoryName},
		{"email_address", "Email", CategoryEmail},
		{"phone_number", "Phone", CategoryPhone},
		{"university", "University / College", CategoryUniversity},
		{"qualification", "Highest Qualification", CategoryDegree},
		{"cgpa", "CGPA", CategoryGPA},
		{"work_experience", "Work Experience", CategoryExperience},
		{"technical_skills", "Technical Skills", CategorySkills},
		{"why_interested", "Why are you interested?", CategoryCoverLetter},
		{"resume_text", "Resume", CategoryResume},
	}
	for _, tt := range tests {
		t.Run(tt.fieldName, func(t *testing.T) {
			if got := Classify(tt.fieldName, tt.label); got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.fieldName, tt.label, got, tt.want)
			}
		})
	}
}

func TestClassify_Unknown(t *testing.T) {
	if got := Classify("xqzw", ""); got != CategoryUnknown {
		t.Errorf("Classify(xqzw) = %q, want unknown", got)
	}
	if got := Classify("xyz123", "Unrelated Gibberish Field"); got != CategoryUnknown {
		t.Errorf("Classify(xyz123) = %q, want unknown", got)
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	upper := Classify("FULL_NAME", "FULL NAME")
	lower := Classify("full_name", "full name")
	if upper != lower {
		t.Errorf("case should not matter: %q vs %q", upper, lower)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	first := Classify("education", "Education Details")
	for i := 0; i < 10; i++ {
		if got := Classify("education", "Education Details"); got != first {
			t.Fatalf("Classify not deterministic: %q then %q", first, got)
		}
	}
}
