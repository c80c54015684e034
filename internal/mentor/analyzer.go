package mentor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/tmaru/lexiquest/internal/llm"
)

// AnalyzerConfig holds configuration for the LLM analyzer.
type AnalyzerConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultAnalyzerConfig returns sensible defaults.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MaxTokens:   512,
		Temperature: 0.3,
	}
}

// Analyzer performs LLM-based mistake cause identification.
type Analyzer struct {
	provider llm.Provider
	cfg      AnalyzerConfig
}

// NewAnalyzer creates an LLM-based analyzer.
func NewAnalyzer(provider llm.Provider, cfg AnalyzerConfig) *Analyzer {
	return &Analyzer{provider: provider, cfg: cfg}
}

// AnalysisRequest is the input for LLM mistake analysis.
type AnalysisRequest struct {
	SkillTag      string
	QuestionText  string
	CorrectAnswer string
	LearnerAnswer string
	Candidates    []*Cause
}

// analysisOutput is the raw LLM response.
type analysisOutput struct {
	CauseTag        *string        `json:"cause_tag"`
	Confidence      float64        `json:"confidence"`
	MentorAnalysis  string         `json:"mentor_analysis"`
	RevengeQuestion map[string]any `json:"revenge_question"`
}

// Analyze sends a wrong answer to the LLM for cause identification.
func (a *Analyzer) Analyze(ctx context.Context, req *AnalysisRequest) (*AnalysisResult, error) {
	ctx = llm.WithPurpose(ctx, "mistake-analysis")

	userMsg, err := buildAnalysisMessage(req)
	if err != nil {
		return nil, fmt.Errorf("build analysis prompt: %w", err)
	}

	llmReq := llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      AnalysisSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}

	resp, err := a.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("LLM mistake analysis failed: %w", err)
	}

	var raw analysisOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}

	result := &AnalysisResult{
		CauseTag:        CauseUnclassified,
		Confidence:      raw.Confidence,
		ClassifierName:  "llm",
		Analysis:        raw.MentorAnalysis,
		RevengeQuestion: raw.RevengeQuestion,
	}

	// Validate cause_tag if present. A tag outside the candidate list is
	// treated as no match.
	if raw.CauseTag != nil {
		for _, c := range req.Candidates {
			if string(c.Tag) == *raw.CauseTag {
				result.CauseTag = c.Tag
				break
			}
		}
	}
	return result, nil
}

const analysisSystemPrompt = `You are a patient language-learning mentor. A learner answered a question incorrectly. Your job is to determine why, matching their error against a known cause taxonomy.

Instructions:
- If the learner's error clearly matches one of the listed causes, return its tag.
- If the error does not match any listed cause, return null for cause_tag.
- Do NOT invent new cause tags. Only use tags from the list provided.
- Provide a confidence score (0.0–1.0) reflecting how well the error matches.
- Write mentor_analysis as one or two short, encouraging sentences.
- When the cause is clear, write a revenge_question that targets the same weakness with fresh content; otherwise return null for it.`

var analysisUserTemplate = template.Must(template.New("analysis").Parse(`Skill: {{.SkillTag}}
Question: {{.QuestionText}}
Correct answer: {{.CorrectAnswer}}
Learner's answer: {{.LearnerAnswer}}

Known error causes:
{{range .Candidates}}- {{.Tag}}: {{.Description}}
{{end}}`))

func buildAnalysisMessage(req *AnalysisRequest) (string, error) {
	var buf bytes.Buffer
	if err := analysisUserTemplate.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}
