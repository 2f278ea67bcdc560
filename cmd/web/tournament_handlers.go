package main

import (
	"net/http"

	"github.com/AdamBeresnev/tournament-app/internal/httputil"
	"github.com/AdamBeresnev/tournament-app/internal/service"
	"github.com/AdamBeresnev/tournament-app/views"
)

const maxImageBytes = 10 << 20

func (app *application) listTournaments(w http.ResponseWriter, r *http.Request) {
	tournaments, err := app.tournaments.ListTournaments(r.Context())
	if err != nil {
		httputil.InternalServerError(w, "Failed to list tournaments", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, tournaments)
}

func (app *application) createTournament(w http.ResponseWriter, r *http.Request) {
	var input service.TournamentInput
	if err := httputil.DecodeJSON(w, r, &input); err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}

	tournament, err := app.tournaments.CreateTournament(r.Context(), input)
	if err != nil {
		serviceError(w, "Failed to create tournament", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, tournament)
}

func (app *application) getTournament(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, "Invalid tournament ID", err)
		return
	}

	tournament, err := app.tournaments.GetTournament(r.Context(), id)
	if err != nil {
		httputil.InternalServerError(w, "Failed to get tournament", err)
		return
	}
	if tournament == nil {
		httputil.NotFound(w, "Tournament not found", nil)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, tournament)
}

func (app *application) updateTournament(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, "Invalid tournament ID", err)
		return
	}

	var input service.TournamentInput
	if err := httputil.DecodeJSON(w, r, &input); err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}

	tournament, err := app.tournaments.UpdateTournament(r.Context(), id, input)
	if err != nil {
		serviceError(w, "Failed to update tournament", err)
		return
	}
	if tournament == nil {
		httputil.NotFound(w, "Tournament not found", nil)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, tournament)
}

func (app *application) deleteTournament(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, "Invalid tournament ID", err)
		return
	}

	deleted, err := app.tournaments.DeleteTournament(r.Context(), id)
	if err != nil {
		httputil.InternalServerError(w, "Failed to delete tournament", err)
		return
	}
	if !deleted {
		httputil.NotFound(w, "Tournament not found", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) listTournamentMatches(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, "Invalid tournament ID", err)
		return
	}

	matches, err := app.matches.ListTournamentMatches(r.Context(), id)
	if err != nil {
		httputil.InternalServerError(w, "Failed to list matches", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, matches)
}

func (app *application) listResults(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, "Invalid tournament ID", err)
		return
	}

	results, err := app.results.ListResults(r.Context(), id)
	if err != nil {
		httputil.InternalServerError(w, "Failed to list results", err)
		return
	}
	if results == nil {
		httputil.NotFound(w, "Tournament not found", nil)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, results)
}

func (app *application) uploadTournamentImage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, "Invalid tournament ID", err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		httputil.BadRequest(w, "Invalid multipart form", err)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		httputil.BadRequest(w, "Missing image file", err)
		return
	}
	defer file.Close()

	tournament, err := app.tournaments.SetTournamentImage(r.Context(), id, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		serviceError(w, "Failed to upload tournament image", err)
		return
	}
	if tournament == nil {
		httputil.NotFound(w, "Tournament not found", nil)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, tournament)
}

func (app *application) myTournaments(w http.ResponseWriter, r *http.Request) {
	tournaments, err := app.tournaments.GetTournamentsForPlayer(r.Context())
	if err != nil {
		httputil.InternalServerError(w, "Failed to get tournaments", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, tournaments)
}

func (app *application) tournamentPage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, "Invalid tournament ID", err)
		return
	}

	data, err := app.tournaments.GetTournamentData(r.Context(), id)
	if err != nil {
		httputil.InternalServerError(w, "Failed to get tournament", err)
		return
	}
	if data == nil {
		httputil.NotFound(w, "Tournament not found", nil)
		return
	}

	page := views.TournamentPage(views.TournamentPageData{
		Tournament: data.Tournament,
		Teams:      data.Teams,
		Matches:    data.Matches,
		Results:    data.Results,
		Host:       app.host,
	})
	if err := views.Render(w, r, page); err != nil {
		httputil.InternalServerError(w, "Failed to render tournament", err)
	}
}
