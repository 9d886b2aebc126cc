package gemini

import "fmt"

// quizPromptFormat directs the model to return a bare JSON array of exactly
// ten multiple-choice questions built from the supplied text.
const quizPromptFormat = `Generate exactly 10 multiple-choice questions from the following text.

Output ONLY a JSON array containing 10 objects. Each object must have the following keys:

- "question": a string with the question text.
- "options": an array of 4 strings representing answer choices.
- "correct": an integer from 0 to 3 indicating the index of the correct option.

Example output:

[
  {
    "question": "What is ...?",
    "options": ["Option 1", "Option 2", "Option 3", "Option 4"],
    "correct": 2
  },
  ...
]

The output MUST be valid JSON parsable by standard JSON parsers.
Do NOT include any explanations, notes, or text outside the JSON array.
Do NOT use trailing commas.
Here is the text to use:

"""%s"""
`

// BuildQuizPrompt embeds the extracted document text verbatim into the quiz
// instruction template.
func BuildQuizPrompt(text string) string {
	return fmt.Sprintf(quizPromptFormat, text)
}
