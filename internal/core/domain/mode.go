package domain

import (
	"fmt"
	"strings"
)

// AnalysisMode is the closed set of prompt styles. Every mode has exactly
// one instruction template; parsing anything else fails.
type AnalysisMode string

const (
	ModeHomework      AnalysisMode = "homework"
	ModeResearchPaper AnalysisMode = "research_paper"
	ModeLectureNotes  AnalysisMode = "lecture_notes"
	ModeFlashcards    AnalysisMode = "flashcards"
	ModeQuiz          AnalysisMode = "quiz"
	ModeSummary       AnalysisMode = "summary"
	ModeFreeQuestion  AnalysisMode = "free_question"
)

func AllModes() []AnalysisMode {
	return []AnalysisMode{
		ModeHomework,
		ModeResearchPaper,
		ModeLectureNotes,
		ModeFlashcards,
		ModeQuiz,
		ModeSummary,
		ModeFreeQuestion,
	}
}

func (m AnalysisMode) Valid() bool {
	switch m {
	case ModeHomework, ModeResearchPaper, ModeLectureNotes,
		ModeFlashcards, ModeQuiz, ModeSummary, ModeFreeQuestion:
		return true
	}
	return false
}

func ParseAnalysisMode(s string) (AnalysisMode, error) {
	m := AnalysisMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", WrapError(ErrUnsupportedMode, "parse analysis mode", fmt.Errorf("unknown mode %q", s))
	}
	return m, nil
}

// QuickAction binds a fixed action name to a mode; the query is always
// empty and the mode template carries the standing request.
type QuickAction struct {
	Name string       `json:"name"`
	Mode AnalysisMode `json:"mode"`
}

func QuickActions() []QuickAction {
	return []QuickAction{
		{Name: "summarize", Mode: ModeSummary},
		{Name: "flashcards", Mode: ModeFlashcards},
		{Name: "quiz", Mode: ModeQuiz},
	}
}

func QuickActionByName(name string) (QuickAction, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, a := range QuickActions() {
		if a.Name == n {
			return a, nil
		}
	}
	return QuickAction{}, WrapError(ErrUnsupportedMode, "resolve quick action", fmt.Errorf("unknown action %q", name))
}
