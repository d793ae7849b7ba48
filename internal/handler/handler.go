package handler

import (
	"github.com/abhishek622/moodjournal/internal/service"
	"go.uber.org/zap"
)

// RecentLimit caps the /moods listing.
const RecentLimit = 30

type Application struct {
	Logger  *zap.Logger
	Journal *service.Journal
}
