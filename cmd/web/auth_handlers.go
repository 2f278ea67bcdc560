package main

import (
	"net/http"
	"strconv"

	"github.com/AdamBeresnev/tournament-app/internal/bracket"
	"github.com/AdamBeresnev/tournament-app/internal/httputil"
	"github.com/AdamBeresnev/tournament-app/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/markbates/goth/gothic"
)

func (app *application) beginAuth(w http.ResponseWriter, r *http.Request) {
	r = gothic.GetContextWithProvider(r, chi.URLParam(r, "provider"))
	gothic.BeginAuthHandler(w, r)
}

func (app *application) completeAuth(w http.ResponseWriter, r *http.Request) {
	r = gothic.GetContextWithProvider(r, chi.URLParam(r, "provider"))

	gothUser, err := gothic.CompleteUserAuth(w, r)
	if err != nil {
		httputil.BadRequest(w, "Authentication failure", err)
		return
	}

	player, err := app.players.FindOrCreatePlayerByProvider(r.Context(), gothUser)
	if err != nil {
		httputil.InternalServerError(w, "Failed to find or create player", err)
		return
	}

	if err := app.login(r, player); err != nil {
		httputil.InternalServerError(w, "Failed to start session", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, player)
}

func (app *application) guestLogin(w http.ResponseWriter, r *http.Request) {
	player, err := app.players.EnsureGuestPlayer(r.Context())
	if err != nil {
		httputil.InternalServerError(w, "Failed to login as guest", err)
		return
	}

	if err := app.login(r, player); err != nil {
		httputil.InternalServerError(w, "Failed to start session", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, player)
}

func (app *application) logout(w http.ResponseWriter, r *http.Request) {
	if err := app.sessions.Destroy(r.Context()); err != nil {
		httputil.InternalServerError(w, "Failed to end session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) login(r *http.Request, player *bracket.Player) error {
	if err := app.sessions.RenewToken(r.Context()); err != nil {
		return err
	}
	app.sessions.Put(r.Context(), middleware.SessionPlayerKey, strconv.FormatInt(player.ID, 10))
	return nil
}
