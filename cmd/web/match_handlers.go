package main

import (
	"net/http"

	"github.com/AdamBeresnev/tournament-app/internal/httputil"
	"github.com/AdamBeresnev/tournament-app/internal/service"
)

func (app *application) listMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := app.matches.ListMatches(r.Context())
	if err != nil {
		httputil.InternalServerError(w, "Failed to list matches", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, matches)
}

func (app *application) createMatch(w http.ResponseWriter, r *http.Request) {
	var input service.MatchInput
	if err := httputil.DecodeJSON(w, r, &input); err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}

	match, err := app.matches.CreateMatch(r.Context(), input)
	if err != nil {
		serviceError(w, "Failed to create match", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, match)
}

func (app *application) getMatch(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, "Invalid match ID", err)
		return
	}

	match, err := app.matches.GetMatch(r.Context(), id)
	if err != nil {
		httputil.InternalServerError(w, "Failed to get match", err)
		return
	}
	if match == nil {
		httputil.NotFound(w, "Match not found", nil)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, match)
}

// updateMatch answers with the match only. Fields that were skipped are logged by the service.
func (app *application) updateMatch(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, "Invalid match ID", err)
		return
	}

	var patch service.MatchPatch
	if err := httputil.DecodeJSON(w, r, &patch); err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}

	result, err := app.matches.UpdateMatch(r.Context(), id, patch)
	if err != nil {
		serviceError(w, "Failed to update match", err)
		return
	}
	if result == nil {
		httputil.NotFound(w, "Match not found", nil)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result.Match)
}

func (app *application) deleteMatch(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, "Invalid match ID", err)
		return
	}

	deleted, err := app.matches.DeleteMatch(r.Context(), id)
	if err != nil {
		httputil.InternalServerError(w, "Failed to delete match", err)
		return
	}
	if !deleted {
		httputil.NotFound(w, "Match not found", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) recordResult(w http.ResponseWriter, r *http.Request) {
	var input service.ResultInput
	if err := httputil.DecodeJSON(w, r, &input); err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}

	result, err := app.results.RecordResult(r.Context(), input)
	if err != nil {
		serviceError(w, "Failed to record result", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, result)
}
