package api

import (
	"context"
	"net/http"
	"time"

	"github.com/mockmate/mockmate/internal/cache"
	"github.com/mockmate/mockmate/internal/store"
)

const (
	leaderboardCacheKey = "leaderboard:all"
	leaderboardCacheTTL = 30 * time.Second
)

// getLeaderboard handles GET /api/v1/leaderboard[?username=].
func (s *Server) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")

	var entries []store.Entry
	var err error

	// Only the unfiltered scan is cached; per-user lookups are cheap and rare.
	if s.cache != nil && username == "" {
		entries, err = cache.FindAndCache(r.Context(), s.cache, leaderboardCacheKey, leaderboardCacheTTL,
			func(ctx context.Context) ([]store.Entry, error) {
				return s.leaderboard.ListEntries(ctx, "")
			})
	} else {
		entries, err = s.leaderboard.ListEntries(r.Context(), username)
	}
	if err != nil {
		s.logger.Error("leaderboard query failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if entries == nil {
		entries = []store.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

type leaderboardSubmission struct {
	Username string `json:"username"`
	Score    *int   `json:"score"`
}

// postLeaderboard handles POST /api/v1/leaderboard.
func (s *Server) postLeaderboard(w http.ResponseWriter, r *http.Request) {
	var sub leaderboardSubmission
	if err := decodeJSON(w, r, &sub); err != nil {
		return
	}

	if sub.Username == "" || sub.Score == nil {
		writeError(w, http.StatusBadRequest, "username and score are required")
		return
	}

	entry, err := s.leaderboard.AddEntry(r.Context(), sub.Username, *sub.Score)
	if err != nil {
		s.logger.Error("leaderboard insert failed", "username", sub.Username, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(r.Context(), leaderboardCacheKey); err != nil {
			s.logger.Warn("leaderboard cache invalidation failed", "error", err)
		}
	}

	writeJSON(w, http.StatusCreated, entry)
}
