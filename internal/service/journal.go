package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/abhishek622/moodjournal/pkg/model"
)

// ErrNoText means the submitted entry was empty. Nothing was classified
// or persisted.
var ErrNoText = errors.New("no text provided")

// Classifier scores one text against a set of emotion classes.
type Classifier interface {
	Classify(ctx context.Context, text string) (model.EmotionScores, error)
}

// JournalStore persists and lists journal entries.
type JournalStore interface {
	Insert(ctx context.Context, text, emotion string, score float64) (int64, time.Time, error)
	ListRecent(ctx context.Context, limit int) ([]model.JournalEntry, error)
}

// Journal orchestrates the entry pipeline: validate, classify, derive
// the primary emotion, persist.
type Journal struct {
	classifier Classifier
	store      JournalStore
	logger     *zap.Logger
}

func NewJournal(classifier Classifier, store JournalStore, logger *zap.Logger) *Journal {
	return &Journal{
		classifier: classifier,
		store:      store,
		logger:     logger,
	}
}

type SubmitResult struct {
	ID        int64
	Emotion   string
	Score     float64
	Timestamp time.Time
}

// Submit classifies and persists one entry. An entry is never stored
// without a derived emotion, and a failed store write discards the
// classification result entirely.
func (j *Journal) Submit(ctx context.Context, text string) (*SubmitResult, error) {
	if text == "" {
		return nil, ErrNoText
	}

	scores, err := j.classifier.Classify(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("analyze entry: %w", err)
	}

	emotion, score := scores.Primary()
	// confidence in [0,1] becomes a percentage with 2 fractional digits
	pct := math.Round(score*100*100) / 100

	id, ts, err := j.store.Insert(ctx, text, emotion, pct)
	if err != nil {
		return nil, fmt.Errorf("save entry: %w", err)
	}

	j.logger.Sugar().Infow("entry saved", "id", id, "emotion", emotion, "score", pct)
	return &SubmitResult{ID: id, Emotion: emotion, Score: pct, Timestamp: ts}, nil
}

// Recent returns up to limit entries, newest first, with timestamps
// rendered as ISO 8601 strings.
func (j *Journal) Recent(ctx context.Context, limit int) ([]model.Mood, error) {
	entries, err := j.store.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	moods := make([]model.Mood, 0, len(entries))
	for _, e := range entries {
		moods = append(moods, model.Mood{
			ID:             e.ID,
			EntryText:      e.EntryText,
			PrimaryEmotion: e.PrimaryEmotion,
			PrimaryScore:   e.PrimaryScore,
			Timestamp:      e.Timestamp.Format(time.RFC3339),
		})
	}
	return moods, nil
}
