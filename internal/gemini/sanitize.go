package gemini

import "strings"

// CleanJSON strips markdown code-fence markers the model tends to wrap its
// output in, then trims surrounding whitespace. It is purely textual: the
// result is not guaranteed to be valid JSON.
func CleanJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
