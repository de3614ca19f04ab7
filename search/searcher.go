package search

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/wenlzhang/taskchat/ai"
	"github.com/wenlzhang/taskchat/core"
	"github.com/wenlzhang/taskchat/index"
	"github.com/wenlzhang/taskchat/queryparse"
	"github.com/wenlzhang/taskchat/vocab"
)

// Searcher turns a natural-language query into a ranked task list, with an
// optional narrated recommendation on top.
type Searcher struct {
	tasks      index.TaskRepository
	vocabulary *vocab.Vocabulary
	parser     *queryparse.Parser
	provider   ai.AIProvider
	logger     *slog.Logger
	now        func() time.Time

	mu       sync.RWMutex
	settings Settings
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithProvider sets the AI provider used by the assisted and conversational
// modes. Without one, every query runs on the deterministic parser.
func WithProvider(provider ai.AIProvider) Option {
	return func(s *Searcher) error {
		s.provider = provider
		return nil
	}
}

// WithSettings replaces the default settings.
func WithSettings(settings Settings) Option {
	return func(s *Searcher) error {
		s.settings = settings.snapshot()
		return nil
	}
}

// WithClock overrides the time source. Tests use this to pin "today".
func WithClock(now func() time.Time) Option {
	return func(s *Searcher) error {
		if now != nil {
			s.now = now
		}
		return nil
	}
}

// NewSearcher creates a new searcher over the given task index.
func NewSearcher(
	tasks index.TaskRepository,
	vocabulary *vocab.Vocabulary,
	stop *vocab.StopWordFilter,
	opts ...Option,
) (*Searcher, error) {
	if tasks == nil {
		return nil, ErrTaskRepositoryRequired
	}
	if vocabulary == nil {
		return nil, ErrVocabularyRequired
	}
	if stop == nil {
		stop = vocab.NewStopWordFilter(nil, nil)
	}

	s := &Searcher{
		tasks:      tasks,
		vocabulary: vocabulary,
		parser:     queryparse.NewParser(vocabulary, stop),
		logger:     slog.Default(),
		now:        time.Now,
		settings:   DefaultSettings(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Settings returns a copy of the current settings.
func (s *Searcher) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.snapshot()
}

// UpdateSettings replaces the settings for subsequent queries. A query
// already in flight keeps the settings it started with.
func (s *Searcher) UpdateSettings(settings Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings.snapshot()
}

// Search runs the full pipeline for one query.
func (s *Searcher) Search(ctx context.Context, query string) (*Result, error) {
	return s.SearchWithMonitor(ctx, query, nil, nil)
}

// SearchWithMonitor runs the full pipeline with monitoring. The monitor
// receives callbacks at each stage; stream, when non-nil, receives
// recommendation text chunks as the model produces them (conversational
// mode only).
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, monitor SearchMonitor, stream ai.StreamFunc) (*Result, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	settings := s.Settings()

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, ErrEmptyQuery
	}

	monitor.Start(trimmed)
	today := s.today()
	result := &Result{Query: trimmed}

	// 1. Understand the query
	parsed, source, fallbackReason, model, usage := s.parse(ctx, trimmed, settings)
	if parsed == nil {
		// parse only returns nil when the context died mid-call
		return nil, ctx.Err()
	}
	result.Parsed = parsed
	result.ParserSource = source
	result.Model = model
	result.Usage = usage
	if fallbackReason != "" {
		result.ParserFallback = true
		result.ParserFallbackReason = fallbackReason
		monitor.ParserFallback(fallbackReason)
	}
	monitor.AfterParse(parsed, source)

	// 2. Classify vague vs specific
	ratio := s.parser.Ratio(trimmed)
	var llmVague *bool
	if source == ParserLLM {
		llmVague = &parsed.IsVague
	}
	classifier := queryparse.NewClassifier(settings.VaguenessMode, settings.VaguenessThreshold)
	vague := classifier.Classify(ratio, llmVague)
	parsed.IsVague = vague
	result.Vague = vague
	monitor.AfterClassification(vague, ratio)

	// 3. Resolve time context, then filter by properties
	queryparse.ResolveTimeContext(parsed)
	filter := parsed.Filter()
	result.Report.Filter = filter

	candidates, err := s.tasks.QueryTasks(ctx, filter, today)
	if err != nil {
		s.logger.Error("error querying task index", "err", err)
		return nil, err
	}
	candidates = excludeNegated(candidates, parsed.NegatedKeywords)
	result.Report.CandidateCount = len(candidates)
	monitor.AfterPropertyFilter(filter, len(candidates))

	// 4. Deduplicate expansions, then score
	kept, dropped := DedupeExpansions(parsed.ExpandedKeywords, parsed.CoreKeywords)
	result.Report.CoreKeywords = append([]string(nil), parsed.CoreKeywords...)
	result.Report.ExpandedKeywords = kept
	result.Report.DroppedExpansions = dropped
	monitor.AfterDedupe(kept, dropped)

	scorer := NewScorer(s.vocabulary, settings.Coefficients, settings.Urgency)
	scored := make([]core.ScoredTask, 0, len(candidates))
	for _, task := range candidates {
		scored = append(scored, scorer.Score(task, parsed, kept, today))
	}
	monitor.AfterScoring(scored)

	// 5. Quality gate
	fraction := gateFraction(settings.Threshold, parsed)
	scored, threshold := applyGate(scored, fraction, scorer.MaxScore(parsed))
	result.Report.Threshold = threshold
	result.Report.ScoredCount = len(scored)
	monitor.AfterQualityGate(len(scored), threshold)

	// 6. Sort and trim
	SortTasks(scored, settings.SortCriteria, s.vocabulary)
	if settings.TopN > 0 && len(scored) > settings.TopN {
		scored = scored[:settings.TopN]
	}
	result.Tasks = scored

	// 7. Narrate (conversational mode only)
	if settings.Mode == ModeConversational && len(scored) > 0 {
		if err := s.recommend(ctx, result, stream, monitor); err != nil {
			return nil, err
		}
	}

	monitor.Finish(result)
	return result, nil
}

// parse produces the structured query. Local mode and any language-model
// failure land on the deterministic parser; a non-empty reason marks the
// fallback. A nil parsed query means the context was cancelled.
func (s *Searcher) parse(ctx context.Context, query string, settings Settings) (*core.ParsedQuery, ParserSource, string, string, ai.Usage) {
	if settings.Mode == ModeLocal {
		return s.parser.Parse(query), ParserRegex, "", "", ai.Usage{}
	}
	if s.provider == nil {
		return s.parser.Parse(query), ParserRegex, "no AI provider configured", "", ai.Usage{}
	}

	res, err := s.provider.QueryParser().ParseQuery(ctx, query)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ParserRegex, "", "", ai.Usage{}
		}
		s.logger.Warn("language-model parse failed, using local parser", "err", err)
		return s.parser.Parse(query), ParserRegex, err.Error(), "", ai.Usage{}
	}
	return res.Query, ParserLLM, "", res.Model, res.Usage
}

// recommend runs the second model call over the ranked tasks. A failure is
// not fatal: the ranked list stands and the result is flagged. Cancellation
// is fatal.
func (s *Searcher) recommend(ctx context.Context, result *Result, stream ai.StreamFunc, monitor SearchMonitor) error {
	if s.provider == nil {
		result.RecommendationFallback = true
		monitor.RecommendationFallback("no AI provider configured")
		return nil
	}

	req := &ai.RecommendationRequest{
		Query: result.Query,
		Tasks: result.Tasks,
		Vague: result.Vague,
	}
	rec, err := s.provider.Recommender().Recommend(ctx, req, stream)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		s.logger.Warn("recommendation failed, returning ranked tasks only", "err", err)
		result.RecommendationFallback = true
		monitor.RecommendationFallback(err.Error())
		return nil
	}

	result.Recommendation = rec
	result.Usage = result.Usage.Add(rec.Usage)
	if rec.Model != "" {
		result.Model = rec.Model
	}
	if rec.RefsSynthesized {
		result.RecommendationFallback = true
		monitor.RecommendationFallback("model cited no tasks, citations synthesized from ranking")
	}
	return nil
}

func (s *Searcher) today() time.Time {
	t := s.now().UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// excludeNegated drops candidates whose text contains any negated keyword.
func excludeNegated(tasks []*core.Task, negated []string) []*core.Task {
	if len(negated) == 0 {
		return tasks
	}
	out := tasks[:0]
	for _, task := range tasks {
		if task == nil || matchesAny(task.Text, negated) {
			continue
		}
		out = append(out, task)
	}
	return out
}
