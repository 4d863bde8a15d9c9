package autofill

import (
	"log/slog"

	"github.com/anatolykoptev/go_autofill/internal/engine"
	"github.com/anatolykoptev/go_autofill/internal/engine/profile"
)

// MatchAndRender classifies a form field and renders its suggestion in one
// step. The returned suggestion carries the caller's fieldName, not the
// category name.
func MatchAndRender(fieldName, label string, p *profile.Profile, jobDescription, companyName string) Suggestion {
	cat := Classify(fieldName, label)
	s := Render(cat, p, jobDescription, companyName)
	s.FieldName = fieldName
	engine.IncrSuggestionsRendered()
	slog.Debug("suggestion rendered",
		slog.String("field", fieldName),
		slog.String("category", string(cat)),
		slog.Float64("confidence", s.Confidence))
	return s
}
