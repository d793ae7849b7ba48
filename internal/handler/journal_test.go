package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhishek622/moodjournal/internal/repository"
	"github.com/abhishek622/moodjournal/internal/service"
	"github.com/abhishek622/moodjournal/pkg/model"
)

type fakeClassifier struct {
	scores model.EmotionScores
	err    error
	calls  int
}

func (f *fakeClassifier) Classify(_ context.Context, _ string) (model.EmotionScores, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.scores, nil
}

type fakeStore struct {
	entries   []model.JournalEntry
	insertErr error
	listErr   error
	nextID    int64
}

func (s *fakeStore) Insert(_ context.Context, text, emotion string, score float64) (int64, time.Time, error) {
	if s.insertErr != nil {
		return 0, time.Time{}, s.insertErr
	}
	s.nextID++
	ts := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(s.nextID) * time.Minute)
	s.entries = append(s.entries, model.JournalEntry{
		ID: s.nextID, EntryText: text, PrimaryEmotion: emotion, PrimaryScore: score, Timestamp: ts,
	})
	return s.nextID, ts, nil
}

func (s *fakeStore) ListRecent(_ context.Context, limit int) ([]model.JournalEntry, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]model.JournalEntry, 0, limit)
	for i := len(s.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.entries[i])
	}
	return out, nil
}

func newTestRouter(classifier *fakeClassifier, store *fakeStore) http.Handler {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	app := &Application{
		Logger:  log,
		Journal: service.NewJournal(classifier, store, log),
	}
	r := gin.New()
	r.POST("/add_entry", app.AddEntry)
	r.GET("/moods", app.GetMoods)
	return r
}

func postEntry(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/add_entry", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddEntrySuccess(t *testing.T) {
	classifier := &fakeClassifier{scores: model.EmotionScores{"joy": 0.92, "neutral": 0.05}}
	store := &fakeStore{}
	router := newTestRouter(classifier, store)

	w := postEntry(t, router, `{"text":"I am thrilled about this!"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Entry saved successfully","emotion":"joy","score":92.0}`, w.Body.String())
	require.Len(t, store.entries, 1)
	assert.Equal(t, "I am thrilled about this!", store.entries[0].EntryText)
}

func TestAddEntryEmptyText(t *testing.T) {
	classifier := &fakeClassifier{scores: model.EmotionScores{"joy": 0.9}}
	store := &fakeStore{}
	router := newTestRouter(classifier, store)

	w := postEntry(t, router, `{"text":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"No text provided"}`, w.Body.String())
	assert.Zero(t, classifier.calls)
	assert.Empty(t, store.entries)
}

func TestAddEntryMalformedBody(t *testing.T) {
	router := newTestRouter(&fakeClassifier{}, &fakeStore{})

	w := postEntry(t, router, `{"text":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"No text provided"}`, w.Body.String())
}

func TestAddEntryClassifierFailure(t *testing.T) {
	classifier := &fakeClassifier{err: fmt.Errorf("connection refused")}
	store := &fakeStore{}
	router := newTestRouter(classifier, store)

	w := postEntry(t, router, `{"text":"rough day"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to analyze emotion"}`, w.Body.String())
	assert.Empty(t, store.entries)
}

func TestAddEntryStoreConnectionFailure(t *testing.T) {
	classifier := &fakeClassifier{scores: model.EmotionScores{"joy": 0.9}}
	store := &fakeStore{insertErr: repository.ErrConnection}
	router := newTestRouter(classifier, store)

	w := postEntry(t, router, `{"text":"rough day"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Database connection failed"}`, w.Body.String())
}

func TestAddEntryStoreWriteFailure(t *testing.T) {
	classifier := &fakeClassifier{scores: model.EmotionScores{"joy": 0.9}}
	store := &fakeStore{insertErr: repository.ErrWrite}
	router := newTestRouter(classifier, store)

	w := postEntry(t, router, `{"text":"rough day"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to save entry to database"}`, w.Body.String())
}

func TestGetMoodsCapsAtThirtyNewestFirst(t *testing.T) {
	classifier := &fakeClassifier{scores: model.EmotionScores{"neutral": 0.5}}
	store := &fakeStore{}
	router := newTestRouter(classifier, store)

	for i := 0; i < 35; i++ {
		w := postEntry(t, router, `{"text":"entry"}`)
		require.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/moods", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var moods []model.Mood
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &moods))
	require.Len(t, moods, 30)
	assert.Equal(t, int64(35), moods[0].ID)
	assert.Equal(t, int64(6), moods[29].ID)
	for i := 1; i < len(moods); i++ {
		assert.Greater(t, moods[i-1].ID, moods[i].ID)
	}
	for _, m := range moods {
		_, err := time.Parse(time.RFC3339, m.Timestamp)
		assert.NoError(t, err)
	}
}

func TestGetMoodsEmptyIsJSONArray(t *testing.T) {
	router := newTestRouter(&fakeClassifier{}, &fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/moods", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetMoodsStoreConnectionFailure(t *testing.T) {
	store := &fakeStore{listErr: repository.ErrConnection}
	router := newTestRouter(&fakeClassifier{}, store)

	req := httptest.NewRequest(http.MethodGet, "/moods", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Database connection failed"}`, w.Body.String())
}

func TestGetMoodsRetrievalFailure(t *testing.T) {
	store := &fakeStore{listErr: repository.ErrRead}
	router := newTestRouter(&fakeClassifier{}, store)

	req := httptest.NewRequest(http.MethodGet, "/moods", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to retrieve moods"}`, w.Body.String())
}
