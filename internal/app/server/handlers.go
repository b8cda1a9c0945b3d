package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bucket-sort/ratingd/internal/aws/storage"
	"github.com/bucket-sort/ratingd/internal/domains/dtos"
	"github.com/bucket-sort/ratingd/internal/ratings"
	"github.com/bucket-sort/ratingd/pkg/glicko2"
	"github.com/bucket-sort/ratingd/pkg/logging"
	"go.uber.org/zap"
)

// Handler for reporting a finished game into the open rating period.
func (s *server) handleSubmitResult(w http.ResponseWriter, r *http.Request) {
	if _, err := s.auth(r); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(err.Error()))
		return
	}

	var req dtos.ResultSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := s.service.SubmitResult(r.Context(), s.currentPeriodId(), req.Rankings)
	if err != nil {
		if errors.Is(err, glicko2.ErrDuplicatePlayer) ||
			errors.Is(err, ratings.ErrEmptyRankings) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(err.Error()))
			return
		}
		logging.Error("failed to submit result", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(dtos.ResultSubmissionResponseFromEntity(result))
}

// Handler for fetching a player's current rating.
func (s *server) handleGetRating(w http.ResponseWriter, r *http.Request) {
	playerId := r.PathValue("playerId")
	rating, err := s.service.GetRating(r.Context(), playerId)
	if err != nil {
		if errors.Is(err, storage.ErrPlayerRatingNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logging.Error("failed to get rating",
			zap.String("player_id", playerId),
			zap.Error(err),
		)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(dtos.RatingResponseFromEntity(rating))
}

// Handler for estimating the balance of a prospective match.
func (s *server) handleMatchQuality(w http.ResponseWriter, r *http.Request) {
	var req dtos.MatchQualityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	quality, err := s.service.EstimateQuality(r.Context(), req.PlayerId, req.OpponentIds)
	if err != nil {
		if errors.Is(err, glicko2.ErrEmptyOpponentSet) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(err.Error()))
			return
		}
		logging.Error("failed to estimate match quality", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(dtos.MatchQualityResponseFromQuality(quality))
}

// Handler for the rating-update feed. The connection stays subscribed until
// the client closes it.
func (s *server) handleFeed(w http.ResponseWriter, r *http.Request) {
	playerId, err := s.auth(r)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(err.Error()))
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("failed to upgrade connection", zap.Error(err))
		return
	}
	defer conn.Close()

	s.feed.subscribe(playerId, conn)
	defer s.feed.unsubscribe(playerId, conn)
	logging.Info("player subscribed to feed", zap.String("player_id", playerId))

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			logging.Info("feed connection closed",
				zap.String("player_id", playerId),
				zap.Error(err),
			)
			return
		}
	}
}
