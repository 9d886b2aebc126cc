package model

import "fmt"

const (
	// QuizLength is the number of questions the generator is asked for.
	QuizLength = 10
	// OptionsPerQuestion is the number of answer choices per question.
	OptionsPerQuestion = 4
)

// Question is a single multiple-choice question as emitted by the model.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
}

// Quiz is an ordered sequence of questions.
type Quiz []Question

// Validate checks the quiz against the expected shape: QuizLength questions,
// OptionsPerQuestion options each, correct index within range. It is a
// separate step from JSON parsing; a quiz that parses but fails Validate is
// still served to clients.
func (q Quiz) Validate() error {
	if len(q) != QuizLength {
		return fmt.Errorf("expected %d questions, got %d", QuizLength, len(q))
	}
	for i, question := range q {
		if question.Question == "" {
			return fmt.Errorf("question %d: empty question text", i)
		}
		if len(question.Options) != OptionsPerQuestion {
			return fmt.Errorf("question %d: expected %d options, got %d", i, OptionsPerQuestion, len(question.Options))
		}
		if question.Correct < 0 || question.Correct >= OptionsPerQuestion {
			return fmt.Errorf("question %d: correct index %d out of range", i, question.Correct)
		}
	}
	return nil
}
