package mentor

import (
	"context"
	"sync"

	"github.com/tmaru/lexiquest/internal/llm"
	"github.com/tmaru/lexiquest/internal/store"
)

// maxPendingRevenge bounds the drainable revenge-question queue. When
// full, the oldest entry is dropped to make room for the newest.
const maxPendingRevenge = 16

// PendingRevenge is a revenge question waiting to be served to the learner.
type PendingRevenge struct {
	MistakeID string
	SkillTag  string
	Question  map[string]any
}

// Service coordinates mistake analysis using rule-based classifiers and
// optional LLM-based cause identification. LLM results are written back
// to the mistake record asynchronously.
type Service struct {
	classifiers []Classifier
	analyzer    *Analyzer
	mistakes    store.MistakeRepo
	jobs        chan analysisJob

	mu      sync.Mutex
	pending []PendingRevenge
}

type analysisJob struct {
	ctx       context.Context
	mistakeID string
	req       *AnalysisRequest
}

// NewService creates a mentor service. If provider is nil, only rule-based
// classification is available.
func NewService(provider llm.Provider, mistakes store.MistakeRepo) *Service {
	s := &Service{
		classifiers: DefaultClassifiers(),
		mistakes:    mistakes,
		jobs:        make(chan analysisJob, 32),
	}
	if provider != nil {
		s.analyzer = NewAnalyzer(provider, DefaultAnalyzerConfig())
		go s.processLoop()
	}
	return s
}

// Analyze classifies a wrong answer. Rule-based classification is
// synchronous and enriches the mistake record immediately. If rules are
// inconclusive and an LLM is available, async analysis is dispatched; its
// result lands on the mistake record and, when it carries a revenge
// question, on the pending queue.
// Returns the synchronous result immediately.
func (s *Service) Analyze(ctx context.Context, mistakeID string, input *ClassifyInput) *AnalysisResult {
	tag, conf, name := RunClassifiers(s.classifiers, input)
	if tag != "" {
		if s.mistakes != nil {
			// A rule match carries no prose; the tag alone is useful.
			_ = s.mistakes.Enrich(ctx, mistakeID, string(tag), "", nil)
		}
		return &AnalysisResult{
			CauseTag:       tag,
			Confidence:     conf,
			ClassifierName: name,
		}
	}

	if s.analyzer != nil {
		s.dispatchLLM(ctx, mistakeID, input)
	}

	return &AnalysisResult{
		CauseTag:       CauseUnclassified,
		Confidence:     0,
		ClassifierName: "none",
	}
}

// TakePending drains the revenge-question queue, oldest first.
func (s *Service) TakePending() []PendingRevenge {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.pending
	s.pending = nil
	return out
}

func (s *Service) dispatchLLM(ctx context.Context, mistakeID string, input *ClassifyInput) {
	req := &AnalysisRequest{
		SkillTag:      input.SkillTag,
		QuestionText:  input.QuestionText,
		CorrectAnswer: input.CorrectAnswer,
		LearnerAnswer: input.LearnerAnswer,
		Candidates:    AllCauses(),
	}

	select {
	case s.jobs <- analysisJob{ctx: ctx, mistakeID: mistakeID, req: req}:
	default:
		// Channel full — drop the analysis silently. Not critical.
	}
}

func (s *Service) processLoop() {
	for job := range s.jobs {
		result, err := s.analyzer.Analyze(job.ctx, job.req)
		if err != nil || result == nil {
			continue
		}
		if s.mistakes != nil {
			_ = s.mistakes.Enrich(job.ctx, job.mistakeID,
				string(result.CauseTag), result.Analysis, result.RevengeQuestion)
		}
		if result.RevengeQuestion != nil {
			s.pushPending(PendingRevenge{
				MistakeID: job.mistakeID,
				SkillTag:  job.req.SkillTag,
				Question:  result.RevengeQuestion,
			})
		}
	}
}

func (s *Service) pushPending(p PendingRevenge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) >= maxPendingRevenge {
		s.pending = s.pending[1:]
	}
	s.pending = append(s.pending, p)
}

// Close shuts down the async processing loop.
func (s *Service) Close() {
	close(s.jobs)
}
