package main

import (
	"net/http"

	"github.com/AdamBeresnev/tournament-app/internal/httputil"
	"github.com/AdamBeresnev/tournament-app/internal/middleware"
	"github.com/AdamBeresnev/tournament-app/internal/service"
)

func (app *application) listTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := app.teams.ListTeams(r.Context())
	if err != nil {
		httputil.InternalServerError(w, "Failed to list teams", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, teams)
}

func (app *application) createTeam(w http.ResponseWriter, r *http.Request) {
	var input service.TeamInput
	if err := httputil.DecodeJSON(w, r, &input); err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}

	team, err := app.teams.CreateTeam(r.Context(), input)
	if err != nil {
		serviceError(w, "Failed to create team", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, team)
}

func (app *application) getTeam(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, "Invalid team ID", err)
		return
	}

	team, err := app.teams.GetTeam(r.Context(), id)
	if err != nil {
		httputil.InternalServerError(w, "Failed to get team", err)
		return
	}
	if team == nil {
		httputil.NotFound(w, "Team not found", nil)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, team)
}

func (app *application) deleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, "Invalid team ID", err)
		return
	}

	deleted, err := app.teams.DeleteTeam(r.Context(), id)
	if err != nil {
		httputil.InternalServerError(w, "Failed to delete team", err)
		return
	}
	if !deleted {
		httputil.NotFound(w, "Team not found", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) addTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, "Invalid team ID", err)
		return
	}

	var input struct {
		Player int64 `json:"player"`
	}
	if err := httputil.DecodeJSON(w, r, &input); err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}

	team, err := app.teams.AddMember(r.Context(), id, input.Player)
	if err != nil {
		serviceError(w, "Failed to add team member", err)
		return
	}
	if team == nil {
		httputil.NotFound(w, "Team not found", nil)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, team)
}

func (app *application) listPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := app.players.ListPlayers(r.Context())
	if err != nil {
		httputil.InternalServerError(w, "Failed to list players", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, players)
}

func (app *application) createPlayer(w http.ResponseWriter, r *http.Request) {
	var input service.PlayerInput
	if err := httputil.DecodeJSON(w, r, &input); err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}

	player, err := app.players.CreatePlayer(r.Context(), input)
	if err != nil {
		serviceError(w, "Failed to create player", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, player)
}

func (app *application) getPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, "Invalid player ID", err)
		return
	}

	player, err := app.players.GetPlayer(r.Context(), id)
	if err != nil {
		httputil.InternalServerError(w, "Failed to get player", err)
		return
	}
	if player == nil {
		httputil.NotFound(w, "Player not found", nil)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, player)
}

func (app *application) deletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, "Invalid player ID", err)
		return
	}

	deleted, err := app.players.DeletePlayer(r.Context(), id)
	if err != nil {
		httputil.InternalServerError(w, "Failed to delete player", err)
		return
	}
	if !deleted {
		httputil.NotFound(w, "Player not found", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) currentPlayer(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, middleware.GetAuthenticatedPlayer(r.Context()))
}
