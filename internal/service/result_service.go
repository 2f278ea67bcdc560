package service

import (
	"context"
	"fmt"

	"github.com/AdamBeresnev/tournament-app/internal/bracket"
	"github.com/AdamBeresnev/tournament-app/internal/store"
)

type ResultService struct {
	stores *store.Stores
}

func NewResultService(stores *store.Stores) *ResultService {
	return &ResultService{stores: stores}
}

type ResultInput struct {
	Tournament int64  `json:"tournament" validate:"required"`
	Match      int64  `json:"match" validate:"required"`
	Winner     *int64 `json:"winner"`
}

// RecordResult stores the outcome of a match. It does not move the winner anywhere.
func (s *ResultService) RecordResult(ctx context.Context, input ResultInput) (*bracket.Result, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	tournament, err := s.lookupTournament(ctx, input.Tournament)
	if err != nil {
		return nil, err
	}
	if tournament == nil {
		return nil, invalidField("tournament", bracket.ErrTournamentNotFound)
	}

	match, err := s.stores.Matches.GetMatch(ctx, input.Match)
	if err != nil {
		if isNotFound(err) {
			return nil, invalidField("match", ErrMatchNotFound)
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	if !match.BelongsTo(tournament.ID) {
		return nil, invalidField("match", ErrMatchNotInEvent)
	}

	if input.Winner != nil {
		if _, err := s.stores.Teams.GetTeam(ctx, *input.Winner); err != nil {
			if isNotFound(err) {
				return nil, invalidField("winner", ErrTeamNotFound)
			}
			return nil, fmt.Errorf("failed to get winner: %w", err)
		}
		if !match.IsBye() && !match.HasTeam(*input.Winner) {
			return nil, invalidField("winner", ErrWinnerNotInMatch)
		}
	}

	result := &bracket.Result{
		TournamentID: tournament.ID,
		MatchID:      match.ID,
		WinnerID:     input.Winner,
	}
	if err := s.stores.Results.CreateResult(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to create result: %w", err)
	}
	return result, nil
}

// ListResults returns nil when the tournament does not exist.
func (s *ResultService) ListResults(ctx context.Context, tournamentID int64) ([]bracket.Result, error) {
	tournament, err := s.lookupTournament(ctx, tournamentID)
	if err != nil || tournament == nil {
		return nil, err
	}
	return s.stores.Results.GetResults(ctx, tournamentID)
}

func (s *ResultService) lookupTournament(ctx context.Context, id int64) (*bracket.Tournament, error) {
	tournament, err := s.stores.Tournaments.GetTournament(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}
	return tournament, nil
}
