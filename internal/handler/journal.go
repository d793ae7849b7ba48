package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhishek622/moodjournal/internal/repository"
	"github.com/abhishek622/moodjournal/internal/service"
	"github.com/abhishek622/moodjournal/pkg/model"
)

// AddEntry analyzes a journal entry and saves it.
// POST /add_entry
func (app *Application) AddEntry(c *gin.Context) {
	var req model.AddEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No text provided"})
		return
	}

	result, err := app.Journal.Submit(c.Request.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoText):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No text provided"})
		case errors.Is(err, repository.ErrConnection):
			app.Logger.Sugar().Errorw("add entry: store connection", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection failed"})
		case errors.Is(err, repository.ErrWrite):
			app.Logger.Sugar().Errorw("add entry: insert failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save entry to database"})
		default:
			app.Logger.Sugar().Errorw("add entry: classification failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze emotion"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Entry saved successfully",
		"emotion": result.Emotion,
		"score":   result.Score,
	})
}

// GetMoods returns the most recent journal entries, newest first.
// GET /moods
func (app *Application) GetMoods(c *gin.Context) {
	moods, err := app.Journal.Recent(c.Request.Context(), RecentLimit)
	if err != nil {
		if errors.Is(err, repository.ErrConnection) {
			app.Logger.Sugar().Errorw("get moods: store connection", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection failed"})
			return
		}
		app.Logger.Sugar().Errorw("get moods: listing failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve moods"})
		return
	}

	c.JSON(http.StatusOK, moods)
}
