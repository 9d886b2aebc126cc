package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"craftquiz/internal/gemini"
	"craftquiz/internal/model"
)

// ErrQuizParse is returned when the sanitized model output is not a JSON
// array of questions.
var ErrQuizParse = errors.New("quiz response is not valid JSON")

// TextGenerator produces model output for a single-turn prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// TextExtractor pulls plain text out of an uploaded document file.
type TextExtractor interface {
	Extract(path string) (string, error)
}

// QuizService turns an uploaded PDF into a quiz via the generative model.
type QuizService interface {
	GenerateFromPDF(ctx context.Context, path string) (model.Quiz, error)
}

type quizService struct {
	generator TextGenerator
	extractor TextExtractor
}

// NewQuizService builds a QuizService from a model client and a PDF extractor.
func NewQuizService(generator TextGenerator, extractor TextExtractor) QuizService {
	return &quizService{generator: generator, extractor: extractor}
}

// GenerateFromPDF extracts the PDF text, prompts the model for a quiz and
// parses the sanitized response. There is one attempt: upstream failures are
// returned as-is, malformed output fails with ErrQuizParse.
func (s *quizService) GenerateFromPDF(ctx context.Context, path string) (model.Quiz, error) {
	text, err := s.extractor.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("extract document text: %w", err)
	}

	raw, err := s.generator.GenerateText(ctx, gemini.BuildQuizPrompt(text))
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	cleaned := gemini.CleanJSON(raw)

	var quiz model.Quiz
	if err := json.Unmarshal([]byte(cleaned), &quiz); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuizParse, err)
	}

	// Shape problems are logged, not fatal: a quiz that parses is served
	// even when it does not match the requested shape.
	if err := quiz.Validate(); err != nil {
		log.Printf("generated quiz failed shape check: %v", err)
	}
	return quiz, nil
}
