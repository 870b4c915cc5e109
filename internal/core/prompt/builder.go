// Package prompt maps analysis modes onto fixed instruction templates and
// assembles the final model prompt from selected context.
package prompt

import (
	"fmt"
	"strings"

	"github.com/studypdf/studypdf/internal/core/domain"
)

// ContextSeparator joins chunk texts inside the rendered context block.
const ContextSeparator = "\n\n---\n\n"

var instructions = map[domain.AnalysisMode]string{
	domain.ModeHomework:      "Explain step-by-step. Give clear answers.",
	domain.ModeResearchPaper: "Summarize methods, results, limitations precisely.",
	domain.ModeLectureNotes:  "Extract key points. Explain simply with examples.",
	domain.ModeFlashcards:    "Generate 10 concise Q&A flashcards. Each card pairs one question with one short answer.",
	domain.ModeQuiz:          "Create a 5-question multiple-choice quiz. Each question has one correct answer and three plausible distractors.",
	domain.ModeSummary:       "Write a structured overview with headings covering key contributions, methods, results, and limitations.",
	domain.ModeFreeQuestion:  "Answer directly and concisely from the provided context.",
}

var standingRequests = map[domain.AnalysisMode]string{
	domain.ModeHomework:      "Work through the document's problems step by step.",
	domain.ModeResearchPaper: "Analyze this paper's methods, results, and limitations.",
	domain.ModeLectureNotes:  "Turn the document into concise study notes.",
	domain.ModeFlashcards:    "Generate 10 concise Q&A flashcards from this document.",
	domain.ModeQuiz:          "Create a 5-question multiple-choice quiz based on the document.",
	domain.ModeSummary:       "Summarize the document, focusing on key contributions, methods, results, and limitations.",
	domain.ModeFreeQuestion:  "Explain the key content of the document.",
}

// Instruction returns the fixed template for a mode. The mapping is total
// over the enum; anything outside it fails.
func Instruction(mode domain.AnalysisMode) (string, error) {
	instruction, ok := instructions[mode]
	if !ok {
		return "", domain.WrapError(domain.ErrUnsupportedMode, "resolve instruction", fmt.Errorf("mode %q", mode))
	}
	return instruction, nil
}

// StandingRequest returns the question substituted when a request carries
// no query, so the rendered prompt always asks something.
func StandingRequest(mode domain.AnalysisMode) string {
	return standingRequests[mode]
}

// Build assembles the prompt for a mode from the selected chunks in the
// order given. Chunk texts are joined with ContextSeparator.
func Build(mode domain.AnalysisMode, selected []domain.Chunk, query string) (domain.Prompt, error) {
	instruction, err := Instruction(mode)
	if err != nil {
		return domain.Prompt{}, err
	}

	texts := make([]string, 0, len(selected))
	for _, chunk := range selected {
		texts = append(texts, chunk.Text)
	}

	q := strings.TrimSpace(query)
	if q == "" {
		q = StandingRequest(mode)
	}

	return domain.Prompt{
		Instruction: instruction,
		Context:     strings.Join(texts, ContextSeparator),
		Query:       q,
	}, nil
}

// SectionSummary builds the prompt for summarizing one chunk of a larger
// document during progressive summarization.
func SectionSummary(chunk domain.Chunk) domain.Prompt {
	return domain.Prompt{
		Instruction: "Summarize this section concisely. Focus on key points.",
		Context:     chunk.Text,
		Query:       "Summarize this section.",
		Excerpt:     true,
	}
}

// Combine builds the final prompt over joined per-section summaries. The
// standing request stands in for a query; the context is always marked as
// an excerpt because section summaries never carry the whole document.
func Combine(mode domain.AnalysisMode, sections string) (domain.Prompt, error) {
	instruction, err := Instruction(mode)
	if err != nil {
		return domain.Prompt{}, err
	}
	return domain.Prompt{
		Instruction: instruction,
		Context:     sections,
		Query:       StandingRequest(mode),
		Excerpt:     true,
	}, nil
}
