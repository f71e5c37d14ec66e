package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/grvbrk/tubelink-server/internal/models"
	"github.com/grvbrk/tubelink-server/internal/store"
	"github.com/grvbrk/tubelink-server/internal/utils"
	"github.com/grvbrk/tubelink-server/internal/youtube"
)

type VideoHandler struct {
	VideoStore store.VideoStore
	Verifier   youtube.Verifier
	Logger     *log.Logger
	Env        string
}

func NewVideoHandler(videoStore store.VideoStore, verifier youtube.Verifier, logger *log.Logger, env string) *VideoHandler {
	return &VideoHandler{
		VideoStore: videoStore,
		Verifier:   verifier,
		Logger:     logger,
		Env:        env,
	}
}

type parseVideoRequest struct {
	URL  string   `json:"url"`
	Tags []string `json:"tags"`
}

func (vh *VideoHandler) HandlerParseVideo(w http.ResponseWriter, r *http.Request) {
	var req parseVideoRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.URL == "" {
		vh.Logger.Println("Error decoding parse-video request body:", err)
		utils.WriteJSON(w, http.StatusBadRequest, utils.Envelope{
			"success": false,
			"status":  http.StatusBadRequest,
			"message": "Validation error",
		})
		return
	}

	if invalid := models.InvalidTags(req.Tags); len(invalid) > 0 {
		vh.Logger.Printf("Rejected invalid tags %v", invalid)
		utils.WriteJSON(w, http.StatusBadRequest, utils.Envelope{
			"success":     false,
			"status":      http.StatusBadRequest,
			"message":     "Invalid tags",
			"invalidTags": invalid,
		})
		return
	}

	videoID := youtube.ExtractVideoID(req.URL)
	if videoID == "" {
		vh.Logger.Printf("Could not extract video id from url %q", req.URL)
		utils.WriteJSON(w, http.StatusBadRequest, utils.Envelope{
			"success": false,
			"status":  http.StatusBadRequest,
			"message": "Invalid YouTube URL",
			"code":    "INVALID_URL",
		})
		return
	}

	access, err := vh.Verifier.CheckVideoAccessibility(r.Context(), videoID)
	if err != nil {
		vh.writeError(w, videoID, err)
		return
	}

	existing, err := vh.VideoStore.FindByYoutubeID(videoID)
	if err != nil {
		vh.writeError(w, videoID, err)
		return
	}

	if existing != nil {
		vh.updateExistingTags(w, videoID, req.Tags)
		return
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	video := &models.Video{
		Youtube_ID:    videoID,
		URL:           req.URL,
		Tags:          tags,
		Title:         access.Title,
		Channel_Title: access.Channel_Title,
		Duration:      access.Duration,
		Raw_Duration:  access.Raw_Duration,
		Description:   access.Description,
		Embed_URL:     "https://www.youtube.com/embed/" + videoID,
		Thumbnails:    access.Thumbnails,
	}

	err = vh.VideoStore.CreateVideo(video)
	if errors.Is(err, store.ErrDuplicate) {
		// A racing request created it first; treat it as the repeat-parse case.
		vh.updateExistingTags(w, videoID, req.Tags)
		return
	}
	if err != nil {
		vh.writeError(w, videoID, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.Envelope{
		"success": true,
		"status":  http.StatusOK,
		"message": "Video saved successfully",
		"data":    video,
	})
}

func (vh *VideoHandler) HandlerGetVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := vh.VideoStore.GetAllVideos()
	if err != nil {
		vh.Logger.Println("Error getting videos from store:", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.Envelope{
			"success": false,
			"status":  http.StatusInternalServerError,
			"message": "Internal Server Error",
		})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.Envelope{
		"success": true,
		"status":  http.StatusOK,
		"data":    videos,
	})
}

// updateExistingTags handles the repeat-parse path: the stored metadata stays
// as it is, only the tag set and updated_at move.
func (vh *VideoHandler) updateExistingTags(w http.ResponseWriter, videoID string, tags []string) {
	if tags == nil {
		tags = []string{}
	}

	updated, err := vh.VideoStore.UpdateTags(videoID, tags)
	if err != nil {
		vh.writeError(w, videoID, err)
		return
	}
	if updated == nil {
		// The record vanished between the lookup and the update. There is no
		// deletion path, so treat it as an unclassified failure.
		vh.writeError(w, videoID, errors.New("video disappeared during tag update"))
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.Envelope{
		"success": true,
		"status":  http.StatusOK,
		"message": "Video already exists, tags updated",
		"data":    updated,
	})
}

// writeError is the only place verification and store failures become wire
// responses. Classified errors keep their status and code; everything else is
// logged and redacted outside development.
func (vh *VideoHandler) writeError(w http.ResponseWriter, videoID string, err error) {
	var verr *youtube.VerificationError
	if errors.As(err, &verr) {
		utils.WriteJSON(w, verr.Status, utils.Envelope{
			"success": false,
			"status":  verr.Status,
			"message": verr.Message,
			"code":    verr.Code,
		})
		return
	}

	vh.Logger.Printf("Error handling video %s: %v", videoID, err)

	message := "Internal server error"
	if vh.Env == "development" {
		message = err.Error()
	}

	utils.WriteJSON(w, http.StatusInternalServerError, utils.Envelope{
		"success": false,
		"status":  http.StatusInternalServerError,
		"message": message,
		"code":    "INTERNAL_ERROR",
	})
}
