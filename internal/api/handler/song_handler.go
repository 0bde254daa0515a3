package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"songvault/internal/api/middleware"
	"songvault/internal/app/service"
	"songvault/internal/common"
	"songvault/internal/domain/model"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const songFieldsMessage = "Both title and artist are required"

type SongHandler struct {
	songService *service.SongService
}

func NewSongHandler(songService *service.SongService) *SongHandler {
	return &SongHandler{songService: songService}
}

func (h *SongHandler) RegisterRoutes(r chi.Router) {
	r.Get("/{songID}", h.getSong) // public read

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticator)
		protected.Get("/", h.listSongs)
		protected.Post("/", h.createSong)
		protected.Put("/{songID}", h.updateSong)
		protected.Delete("/{songID}", h.deleteSong)
	})
}

func (h *SongHandler) listSongs(w http.ResponseWriter, r *http.Request) {
	songs, err := h.songService.ListSongs(r.Context())
	if err != nil {
		common.RespondWithMessage(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	common.RespondWithJSON(w, http.StatusOK, map[string][]model.Song{"songs": songs})
}

func (h *SongHandler) createSong(w http.ResponseWriter, r *http.Request) {
	var req service.SongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithMessage(w, http.StatusBadRequest, songFieldsMessage)
		return
	}

	song, err := h.songService.CreateSong(r.Context(), req)
	if err != nil {
		if errors.Is(err, common.ErrBadRequest) {
			common.RespondWithMessage(w, http.StatusBadRequest, songFieldsMessage)
			return
		}
		common.RespondWithMessage(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	common.RespondWithJSON(w, http.StatusCreated, map[string]*model.Song{"song": song})
}

func (h *SongHandler) getSong(w http.ResponseWriter, r *http.Request) {
	id, ok := songIDFromRequest(w, r)
	if !ok {
		return
	}

	song, err := h.songService.GetSong(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.RespondWithMessage(w, http.StatusNotFound, songNotFoundMessage(id))
			return
		}
		common.RespondWithMessage(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	common.RespondWithJSON(w, http.StatusOK, map[string]*model.Song{"song": song})
}

func (h *SongHandler) updateSong(w http.ResponseWriter, r *http.Request) {
	id, ok := songIDFromRequest(w, r)
	if !ok {
		return
	}

	var req service.SongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithMessage(w, http.StatusBadRequest, songFieldsMessage)
		return
	}

	song, err := h.songService.UpdateSong(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrBadRequest):
			common.RespondWithMessage(w, http.StatusBadRequest, songFieldsMessage)
		case errors.Is(err, common.ErrNotFound):
			common.RespondWithMessage(w, http.StatusNotFound, songNotFoundMessage(id))
		default:
			common.RespondWithMessage(w, common.HTTPStatusFromError(err), err.Error())
		}
		return
	}

	common.RespondWithJSON(w, http.StatusOK, map[string]*model.Song{"song": song})
}

func (h *SongHandler) deleteSong(w http.ResponseWriter, r *http.Request) {
	id, ok := songIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.songService.DeleteSong(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.RespondWithMessage(w, http.StatusNotFound, songNotFoundMessage(id))
			return
		}
		common.RespondWithMessage(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	common.RespondWithMessage(w, http.StatusNoContent, fmt.Sprintf("Song with id: %d is deleted", id))
}

// songIDFromRequest parses the numeric path parameter. A non-numeric id can
// never match a stored song, so it gets the same 404 as an unknown one.
func songIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "songID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		common.RespondWithMessage(w, http.StatusNotFound, fmt.Sprintf("Song with id: %s does not exist", raw))
		return 0, false
	}
	return id, true
}

func songNotFoundMessage(id int64) string {
	return fmt.Sprintf("Song with id: %d does not exist", id)
}
