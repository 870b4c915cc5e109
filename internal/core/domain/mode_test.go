package domain

import "testing"

func TestParseAnalysisModeAcceptsAllModes(t *testing.T) {
	for _, m := range AllModes() {
		got, err := ParseAnalysisMode(string(m))
		if err != nil {
			t.Fatalf("ParseAnalysisMode(%q) error = %v", m, err)
		}
		if got != m {
			t.Fatalf("ParseAnalysisMode(%q) = %q", m, got)
		}
	}
}

func TestParseAnalysisModeNormalizes(t *testing.T) {
	got, err := ParseAnalysisMode("  Research_Paper ")
	if err != nil {
		t.Fatalf("ParseAnalysisMode() error = %v", err)
	}
	if got != ModeResearchPaper {
		t.Fatalf("ParseAnalysisMode() = %q, want %q", got, ModeResearchPaper)
	}
}

func TestParseAnalysisModeRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "essay", "homework/problem"} {
		_, err := ParseAnalysisMode(s)
		if !IsKind(err, ErrUnsupportedMode) {
			t.Fatalf("expected ErrUnsupportedMode for %q, got %v", s, err)
		}
	}
}

func TestQuickActionByName(t *testing.T) {
	cases := map[string]AnalysisMode{
		"summarize":  ModeSummary,
		"flashcards": ModeFlashcards,
		"quiz":       ModeQuiz,
		" Quiz ":     ModeQuiz,
	}
	for name, want := range cases {
		action, err := QuickActionByName(name)
		if err != nil {
			t.Fatalf("QuickActionByName(%q) error = %v", name, err)
		}
		if action.Mode != want {
			t.Fatalf("QuickActionByName(%q).Mode = %q, want %q", name, action.Mode, want)
		}
	}

	if _, err := QuickActionByName("translate"); !IsKind(err, ErrUnsupportedMode) {
		t.Fatalf("expected ErrUnsupportedMode for unknown action, got %v", err)
	}
}
