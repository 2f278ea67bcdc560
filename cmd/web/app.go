package main

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/AdamBeresnev/tournament-app/internal/config"
	"github.com/AdamBeresnev/tournament-app/internal/httputil"
	"github.com/AdamBeresnev/tournament-app/internal/payment"
	"github.com/AdamBeresnev/tournament-app/internal/service"
	"github.com/AdamBeresnev/tournament-app/internal/store"
	"github.com/AdamBeresnev/tournament-app/internal/utils"
	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
)

type application struct {
	cfg         *config.Config
	host        string
	sessions    *scs.SessionManager
	playerStore *store.PlayerStore

	tournaments *service.TournamentService
	matches     *service.MatchService
	teams       *service.TeamService
	players     *service.PlayerService
	results     *service.ResultService
	payments    *service.PaymentService
}

func newApplication(cfg *config.Config, database *sqlx.DB, sessions *scs.SessionManager, deps dependencies) *application {
	stores := store.New(database)
	brackets := service.NewBracketService(database, stores)

	host := ""
	if u, err := url.Parse(cfg.BaseURL); err == nil {
		host = u.Hostname()
	}

	return &application{
		cfg:         cfg,
		host:        host,
		sessions:    sessions,
		playerStore: stores.Players,
		tournaments: service.NewTournamentService(database, stores, brackets, deps.uploader),
		matches:     service.NewMatchService(database, stores),
		teams:       service.NewTeamService(database, stores),
		players:     service.NewPlayerService(stores.Players),
		results:     service.NewResultService(stores),
		payments:    service.NewPaymentService(stores.Products, deps.checkout, deps.mailer, cfg.BaseURL),
	}
}

func idParam(r *http.Request, name string) (int64, error) {
	return utils.ParseID(chi.URLParam(r, name))
}

// serviceError maps a service failure onto a response.
func serviceError(w http.ResponseWriter, msg string, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		httputil.BadRequestFields(w, validationErr.Message, validationErr.Fields, err)
	case errors.Is(err, payment.ErrInvalidSignature):
		httputil.BadRequest(w, "Invalid signature", err)
	case errors.Is(err, service.ErrPaymentsDisabled), errors.Is(err, service.ErrUploadsDisabled):
		httputil.ServiceUnavailable(w, err.Error(), err)
	default:
		httputil.InternalServerError(w, msg, err)
	}
}
