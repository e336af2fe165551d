package lookup

import (
	"context"
	"log/slog"

	"wordpage/internal/dictionary"
	"wordpage/internal/metrics"
	"wordpage/internal/models"
)

// WordSource supplies random words.
type WordSource interface {
	RandomWord(ctx context.Context) (string, error)
}

// DefinitionSource supplies raw dictionary entries for a word.
type DefinitionSource interface {
	Define(ctx context.Context, word string) ([]dictionary.RawEntry, error)
}

// Result describes how a lookup sequence ended.
type Result struct {
	Token   uint64
	Word    string
	Kind    dictionary.ErrorKind
	Applied bool
}

// Outcome is the metrics label for the result.
func (r Result) Outcome() string {
	if !r.Applied {
		return models.OutcomeStale
	}
	return models.OutcomeForKind(r.Kind)
}

// Service runs lookup sequences against the word and definition sources.
type Service struct {
	words       WordSource
	definitions DefinitionSource
	log         *slog.Logger
}

// NewService creates a lookup service.
func NewService(words WordSource, definitions DefinitionSource, logger *slog.Logger) *Service {
	return &Service{
		words:       words,
		definitions: definitions,
		log:         logger.With("component", "lookup"),
	}
}

// RandomWord fetches a random word without touching any page.
func (s *Service) RandomWord(ctx context.Context) (string, error) {
	return s.words.RandomWord(ctx)
}

// Define fetches and maps the definition of word. Errors wrap the
// dictionary sentinels.
func (s *Service) Define(ctx context.Context, word string) (dictionary.DefinitionRecord, error) {
	entries, err := s.definitions.Define(ctx, word)
	if err != nil {
		return dictionary.DefinitionRecord{}, err
	}
	return dictionary.MapResponse(entries)
}

// Search looks word up and applies the result to page.
func (s *Service) Search(ctx context.Context, page *Page, word string) Result {
	token := page.Begin()
	return s.finish(ctx, page, token, models.TriggerSearch, word)
}

// Random picks a random word, looks it up and applies the result to page.
func (s *Service) Random(ctx context.Context, page *Page) Result {
	token := page.Begin()

	word, err := s.words.RandomWord(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "random word unavailable", slog.String("error", err.Error()))
		res := Result{Token: token, Kind: dictionary.TransportError}
		res.Applied = page.ShowError(token, res.Kind, "")
		s.record(ctx, models.TriggerRandom, res)
		return res
	}

	return s.finish(ctx, page, token, models.TriggerRandom, word)
}

func (s *Service) finish(ctx context.Context, page *Page, token uint64, trigger, word string) Result {
	res := Result{Token: token, Word: word}

	record, err := s.Define(ctx, word)
	if err != nil {
		res.Kind = dictionary.Classify(err)
		if res.Kind == dictionary.MappingError {
			s.log.ErrorContext(ctx, "definition payload could not be mapped",
				slog.String("word", word), slog.String("error", err.Error()))
		}
		res.Applied = page.ShowError(token, res.Kind, word)
	} else {
		res.Applied = page.Show(token, record)
	}

	s.record(ctx, trigger, res)
	return res
}

func (s *Service) record(ctx context.Context, trigger string, res Result) {
	outcome := res.Outcome()
	metrics.RecordLookup(trigger, outcome)
	if !res.Applied {
		s.log.DebugContext(ctx, "discarded stale lookup",
			slog.Uint64("token", res.Token), slog.String("word", res.Word))
		return
	}
	s.log.InfoContext(ctx, "lookup finished",
		slog.String("trigger", trigger), slog.String("word", res.Word), slog.String("outcome", outcome))
}
