package model

import "time"

// JournalEntry is one persisted journal record. Entries are immutable
// after creation; there is no update or delete path.
type JournalEntry struct {
	ID             int64     `json:"id" db:"id"`
	EntryText      string    `json:"entry_text" db:"entry_text"`
	PrimaryEmotion string    `json:"primary_emotion" db:"primary_emotion"`
	PrimaryScore   float64   `json:"primary_score" db:"primary_score"`
	Timestamp      time.Time `json:"timestamp" db:"timestamp"`
}

// EmotionScores maps an emotion label to the classifier's confidence
// for it. Scores are opaque ranking values in [0,1]; they are not
// guaranteed to sum to 1.
type EmotionScores map[string]float64

// Primary returns the label with the highest score. Equal scores break
// to the lexicographically smaller label so the result is deterministic.
// An empty map returns zero values.
func (s EmotionScores) Primary() (string, float64) {
	var (
		best  string
		score float64
		found bool
	)
	for label, sc := range s {
		if !found || sc > score || (sc == score && label < best) {
			best, score, found = label, sc, true
		}
	}
	return best, score
}

// Mood is the wire shape for the recent-entries listing. Timestamp is
// an ISO 8601 string rather than a time.Time.
type Mood struct {
	ID             int64   `json:"id"`
	EntryText      string  `json:"entry_text"`
	PrimaryEmotion string  `json:"primary_emotion"`
	PrimaryScore   float64 `json:"primary_score"`
	Timestamp      string  `json:"timestamp"`
}

type AddEntryRequest struct {
	Text string `json:"text"`
}
