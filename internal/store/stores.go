package store

import "github.com/jmoiron/sqlx"

// Stores bundles every table store over one connection pool.
type Stores struct {
	Tournaments *TournamentStore
	Matches     *MatchStore
	Teams       *TeamStore
	Players     *PlayerStore
	Results     *ResultStore
	Products    *ProductStore
}

func New(db *sqlx.DB) *Stores {
	return &Stores{
		Tournaments: NewTournamentStore(db),
		Matches:     NewMatchStore(db),
		Teams:       NewTeamStore(db),
		Players:     NewPlayerStore(db),
		Results:     NewResultStore(db),
		Products:    NewProductStore(db),
	}
}
