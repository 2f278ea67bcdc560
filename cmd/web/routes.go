package main

import (
	"net/http"

	"github.com/AdamBeresnev/tournament-app/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: app.cfg.CORSCredentials(),
		MaxAge:           300,
	}))
	r.Use(app.sessions.LoadAndSave)
	r.Use(middleware.LoadAuthenticatedPlayer(app.sessions, app.playerStore))

	r.Route("/api", func(r chi.Router) {
		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", app.listTournaments)
			r.Post("/", app.createTournament)
			r.Get("/{id}", app.getTournament)
			r.Put("/{id}", app.updateTournament)
			r.Delete("/{id}", app.deleteTournament)
			r.Get("/{id}/matches", app.listTournamentMatches)
			r.Get("/{id}/results", app.listResults)
			r.Post("/{id}/image", app.uploadTournamentImage)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", app.listMatches)
			r.Post("/", app.createMatch)
			r.Get("/{id}", app.getMatch)
			r.Patch("/{id}", app.updateMatch)
			r.Put("/{id}", app.updateMatch)
			r.Delete("/{id}", app.deleteMatch)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", app.listTeams)
			r.Post("/", app.createTeam)
			r.Get("/{id}", app.getTeam)
			r.Delete("/{id}", app.deleteTeam)
			r.Post("/{id}/members", app.addTeamMember)
		})

		r.Route("/players", func(r chi.Router) {
			r.Get("/", app.listPlayers)
			r.Post("/", app.createPlayer)
			r.Get("/{id}", app.getPlayer)
			r.Delete("/{id}", app.deletePlayer)
		})

		r.Post("/results", app.recordResult)

		r.Get("/products", app.listProducts)
		r.Post("/products/{id}/checkout", app.checkout)
		r.Post("/payments/webhook", app.paymentWebhook)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/me", app.currentPlayer)
			r.Get("/me/tournaments", app.myTournaments)
		})
	})

	r.Get("/auth/{provider}", app.beginAuth)
	r.Get("/auth/{provider}/callback", app.completeAuth)
	r.Post("/auth/guest", app.guestLogin)
	r.Post("/logout", app.logout)

	r.Get("/tournaments/{id}", app.tournamentPage)

	return r
}
