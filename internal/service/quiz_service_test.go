package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"craftquiz/internal/model"
)

// MockTextGenerator is a mock implementation of TextGenerator.
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockTextExtractor is a mock implementation of TextExtractor.
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

func wellFormedQuizJSON(t *testing.T) string {
	t.Helper()
	quiz := make(model.Quiz, model.QuizLength)
	for i := range quiz {
		quiz[i] = model.Question{
			Question: fmt.Sprintf("Question %d?", i+1),
			Options:  []string{"A", "B", "C", "D"},
			Correct:  i % model.OptionsPerQuestion,
		}
	}
	data, err := json.Marshal(quiz)
	assert.NoError(t, err)
	return string(data)
}

func TestGenerateFromPDF(t *testing.T) {
	extractor := new(MockTextExtractor)
	extractor.On("Extract", "doc.pdf").Return("chapter one text", nil)

	generator := new(MockTextGenerator)
	generator.On("GenerateText", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "chapter one text")
	})).Return(wellFormedQuizJSON(t), nil)

	svc := NewQuizService(generator, extractor)
	quiz, err := svc.GenerateFromPDF(context.Background(), "doc.pdf")
	assert.NoError(t, err)
	assert.NoError(t, quiz.Validate())
	assert.Len(t, quiz, model.QuizLength)

	extractor.AssertExpectations(t)
	generator.AssertExpectations(t)
}

func TestGenerateFromPDFStripsFences(t *testing.T) {
	extractor := new(MockTextExtractor)
	extractor.On("Extract", "doc.pdf").Return("text", nil)

	generator := new(MockTextGenerator)
	generator.On("GenerateText", mock.Anything, mock.Anything).
		Return("```json\n"+wellFormedQuizJSON(t)+"\n```", nil)

	svc := NewQuizService(generator, extractor)
	quiz, err := svc.GenerateFromPDF(context.Background(), "doc.pdf")
	assert.NoError(t, err)
	assert.Len(t, quiz, model.QuizLength)
}

func TestGenerateFromPDFParseError(t *testing.T) {
	extractor := new(MockTextExtractor)
	extractor.On("Extract", "doc.pdf").Return("text", nil)

	generator := new(MockTextGenerator)
	generator.On("GenerateText", mock.Anything, mock.Anything).
		Return("Sorry, I cannot help with that.", nil)

	svc := NewQuizService(generator, extractor)
	_, err := svc.GenerateFromPDF(context.Background(), "doc.pdf")
	assert.ErrorIs(t, err, ErrQuizParse)
}

func TestGenerateFromPDFUpstreamFailure(t *testing.T) {
	extractor := new(MockTextExtractor)
	extractor.On("Extract", "doc.pdf").Return("text", nil)

	generator := new(MockTextGenerator)
	generator.On("GenerateText", mock.Anything, mock.Anything).
		Return("", fmt.Errorf("quota exceeded"))

	svc := NewQuizService(generator, extractor)
	_, err := svc.GenerateFromPDF(context.Background(), "doc.pdf")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrQuizParse)
}

func TestGenerateFromPDFExtractionFailure(t *testing.T) {
	extractor := new(MockTextExtractor)
	extractor.On("Extract", "broken.pdf").Return("", fmt.Errorf("not a pdf"))

	generator := new(MockTextGenerator)

	svc := NewQuizService(generator, extractor)
	_, err := svc.GenerateFromPDF(context.Background(), "broken.pdf")
	assert.Error(t, err)
	generator.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything)
}

func TestGenerateFromPDFMalformedShapePassesThrough(t *testing.T) {
	extractor := new(MockTextExtractor)
	extractor.On("Extract", "doc.pdf").Return("text", nil)

	// Parseable but wrong shape: two questions, one missing "correct".
	generator := new(MockTextGenerator)
	generator.On("GenerateText", mock.Anything, mock.Anything).
		Return(`[{"question":"Q1?","options":["A","B","C","D"],"correct":1},{"question":"Q2?","options":["A","B"]}]`, nil)

	svc := NewQuizService(generator, extractor)
	quiz, err := svc.GenerateFromPDF(context.Background(), "doc.pdf")
	assert.NoError(t, err, "a quiz that parses is served even when malformed")
	assert.Len(t, quiz, 2)
	assert.Error(t, quiz.Validate())
}
