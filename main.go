// go_autofill — resume field extraction and form auto-fill engine.
//
// Reads a plain-text resume, builds a structured profile, and renders fill
// suggestions for job application form fields. With a job description it also
// plans the application (skill match score, missing skills, which projects to
// highlight), scores the generated package against the posting, and records
// the application in the local tracker when a company name is given.
//
// Usage: go_autofill <resume.txt> [field ...]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"

	"github.com/anatolykoptev/go_autofill/internal/engine"
	"github.com/anatolykoptev/go_autofill/internal/engine/autofill"
	"github.com/anatolykoptev/go_autofill/internal/engine/evaluate"
	"github.com/anatolykoptev/go_autofill/internal/engine/planner"
	"github.com/anatolykoptev/go_autofill/internal/engine/profile"
	"github.com/anatolykoptev/go_autofill/internal/store"
)

// defaultFields mirrors the field set application forms most commonly carry.
var defaultFields = []string{
	"name", "email", "phone", "university", "degree",
	"skills", "experience", "cover_letter",
}

type output struct {
	SessionID   string                `json:"session_id"`
	Profile     *profile.Profile      `json:"profile"`
	Suggestions []autofill.Suggestion `json:"suggestions"`
	Plan        *planner.Strategy     `json:"plan,omitempty"`
	Evaluation  *evaluate.Result      `json:"evaluation,omitempty"`
	Tracked     string                `json:"tracked,omitempty"`
}

func main() {
	initEngine()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: go_autofill <resume.txt> [field ...]")
		os.Exit(2)
	}

	text, err := os.ReadFile(os.Args[1])
	if err != nil {
		slog.Error("read resume", slog.Any("error", err))
		os.Exit(1)
	}

	jobDescription := ""
	if jdPath := env.Str("JOB_DESCRIPTION_FILE", ""); jdPath != "" {
		jd, err := os.ReadFile(jdPath)
		if err != nil {
			slog.Error("read job description", slog.Any("error", err))
			os.Exit(1)
		}
		jobDescription = engine.NormalizeDescription(string(jd))
		slog.Info("job description loaded",
			slog.String("preview", engine.TruncateAtWord(jobDescription, 80)))
	}
	companyName := env.Str("COMPANY_NAME", "")

	ctx := context.Background()
	sessionID := store.NewSessionID()

	var p *profile.Profile
	err = engine.TrackOperation(ctx, "build_profile", func(ctx context.Context) error {
		p = profile.Build(string(text), profile.HeuristicRecognizer{})
		return store.PutProfile(ctx, sessionID, p)
	})
	if err != nil {
		slog.Error("store profile", slog.Any("error", err))
		os.Exit(1)
	}

	fields := os.Args[2:]
	if len(fields) == 0 {
		fields = defaultFields
	}

	out := output{
		SessionID:   sessionID,
		Profile:     p,
		Suggestions: make([]autofill.Suggestion, 0, len(fields)),
	}
	for _, field := range fields {
		out.Suggestions = append(out.Suggestions,
			autofill.MatchAndRender(field, field, p, jobDescription, companyName))
	}

	if jobDescription != "" {
		plan := planner.Plan(jobDescription, p)
		out.Plan = &plan

		out.Evaluation = evaluatePackage(jobDescription, p, companyName)

		if companyName != "" {
			out.Tracked = trackApplication(ctx, companyName, &plan)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		slog.Error("encode output", slog.Any("error", err))
		os.Exit(1)
	}

	if env.Str("METRICS", "") != "" {
		fmt.Fprint(os.Stderr, engine.FormatMetrics())
	}
}

// evaluatePackage scores the generated application content (experience and
// project bullets plus the rendered cover letter) against the posting. The
// plain-text report goes to EVAL_REPORT_FILE when set.
func evaluatePackage(jobDescription string, p *profile.Profile, companyName string) *evaluate.Result {
	pkg := evaluate.Package{
		CoverLetter: autofill.Render(autofill.CategoryCoverLetter, p, jobDescription, companyName).SuggestedValue,
	}
	for _, e := range p.Experience {
		pkg.Bullets = append(pkg.Bullets, e.Description)
	}
	for _, pr := range p.Projects {
		pkg.Bullets = append(pkg.Bullets, pr.Description)
	}

	r := evaluate.Evaluate(jobDescription, p, pkg)

	if reportPath := env.Str("EVAL_REPORT_FILE", ""); reportPath != "" {
		if err := os.WriteFile(reportPath, []byte(r.Report()), 0644); err != nil {
			slog.Warn("write evaluation report", slog.Any("error", err))
		}
	}
	return r
}

// trackApplication records the planned application in the local tracker.
// Tracking failures are logged, not fatal.
func trackApplication(ctx context.Context, companyName string, plan *planner.Strategy) string {
	role := plan.Analysis.Title
	if role == "" {
		role = "Unknown Role"
	}
	res, err := store.AddApplication(ctx, store.ApplicationAddInput{
		Company:    companyName,
		Role:       role,
		MatchScore: plan.MatchScore,
	})
	if err != nil {
		slog.Warn("track application", slog.Any("error", err))
		return ""
	}
	return res.Message
}

func initEngine() {
	engine.Init(engine.Config{
		RedisURL:               env.Str("REDIS_URL", ""),
		SessionTTL:             env.Duration("SESSION_TTL", 24*time.Hour),
		SessionMaxEntries:      env.Int("SESSION_MAX_ENTRIES", 1000),
		SessionCleanupInterval: env.Duration("SESSION_CLEANUP_INTERVAL", 300*time.Second),
	})
	store.InitSessions()
}
