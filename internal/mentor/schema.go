package mentor

import "github.com/tmaru/lexiquest/internal/llm"

// AnalysisSchema defines the JSON schema for LLM mistake analysis responses.
var AnalysisSchema = &llm.Schema{
	Name:        "mentor-analysis",
	Description: "Classification of a wrong answer against a known error-cause taxonomy, with a short mentor explanation and a follow-up question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cause_tag": map[string]any{
				"type":        []any{"string", "null"},
				"description": "The tag of the matching cause from the candidate list, or null if no match",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "Confidence score (0.0–1.0) reflecting how well the error matches the cause",
			},
			"mentor_analysis": map[string]any{
				"type":        "string",
				"description": "One or two sentences explaining the mistake to the learner, in plain encouraging language",
			},
			"revenge_question": map[string]any{
				"type":        []any{"object", "null"},
				"description": "A new question targeting the same weakness, or null if the cause is unclear",
				"properties": map[string]any{
					"question_text":  map[string]any{"type": "string"},
					"correct_answer": map[string]any{"type": "string"},
					"distractors": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required":             []any{"question_text", "correct_answer"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"cause_tag", "confidence", "mentor_analysis", "revenge_question"},
		"additionalProperties": false,
	},
}
