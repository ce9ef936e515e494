package groq

import "encoding/json"

// maxRawExcerpt caps the raw-payload fallback answer.
const maxRawExcerpt = 2000

// extractor tries to pull the answer text out of one known response
// shape. It reports false when the payload does not match its shape.
type extractor func(payload []byte) (string, bool)

// extractors is the ordered list of known response shapes. Providers
// behind OpenAI-compatible gateways disagree on where the text lives, so
// each shape is tried in turn and the first match wins.
var extractors = []extractor{
	extractMessageContent,
	extractChoiceText,
	extractTopLevelAnswer,
}

// ExtractAnswer unwraps the answer text from a completion response.
// When no known shape matches, the raw payload is returned truncated to
// 2000 characters so the caller still gets something inspectable instead
// of a hard failure.
func ExtractAnswer(payload []byte) string {
	for _, extract := range extractors {
		if answer, ok := extract(payload); ok {
			return answer
		}
	}

	raw := string(payload)
	if len(raw) > maxRawExcerpt {
		return raw[:maxRawExcerpt] + "..."
	}
	return raw
}

// extractMessageContent handles the standard chat shape:
// {"choices":[{"message":{"content":"..."}}]}.
func extractMessageContent(payload []byte) (string, bool) {
	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(payload, &resp); err != nil {
		return "", false
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", false
	}
	return resp.Choices[0].Message.Content, true
}

// extractChoiceText handles the legacy completion shape:
// {"choices":[{"text":"..."}]}.
func extractChoiceText(payload []byte) (string, bool) {
	var resp struct {
		Choices []struct {
			Text string `json:"text"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(payload, &resp); err != nil {
		return "", false
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Text == "" {
		return "", false
	}
	return resp.Choices[0].Text, true
}

// extractTopLevelAnswer handles gateways that flatten the response:
// {"answer":"..."}.
func extractTopLevelAnswer(payload []byte) (string, bool) {
	var resp struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(payload, &resp); err != nil {
		return "", false
	}
	if resp.Answer == "" {
		return "", false
	}
	return resp.Answer, true
}
