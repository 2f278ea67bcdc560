package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/AdamBeresnev/tournament-app/internal/bracket"
	"github.com/AdamBeresnev/tournament-app/internal/middleware"
	"github.com/AdamBeresnev/tournament-app/internal/storage"
	"github.com/AdamBeresnev/tournament-app/internal/store"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

type TournamentService struct {
	db       *sqlx.DB
	stores   *store.Stores
	brackets *BracketService
	uploader storage.FileUploader
}

// NewTournamentService wires the orchestrator. uploader may be nil, which turns image uploads off.
func NewTournamentService(db *sqlx.DB, stores *store.Stores, brackets *BracketService, uploader storage.FileUploader) *TournamentService {
	return &TournamentService{db: db, stores: stores, brackets: brackets, uploader: uploader}
}

type TournamentInput struct {
	Title        string  `json:"title" validate:"required,max=100"`
	Slots        int     `json:"slots"`
	StartDate    string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	WinningPrize string  `json:"winning_prize" validate:"required,max=100"`
	Details      string  `json:"details" validate:"required"`
	Image        *string `json:"image" validate:"omitempty,url"`
	Creator      *int64  `json:"creator"`
}

type TournamentData struct {
	Tournament *bracket.Tournament
	Matches    []bracket.Match
	Results    []bracket.Result
	Teams      []bracket.Team
}

func (in *TournamentInput) validate() error {
	if err := validateInput(in); err != nil {
		return err
	}

	// Both parse, the validator checked the layout.
	start, _ := time.Parse(bracket.DateLayout, in.StartDate)
	end, _ := time.Parse(bracket.DateLayout, in.EndDate)
	if end.Before(start) {
		return invalidField("end_date", ErrInvalidDateRange)
	}
	return nil
}

// resolveCreator picks the explicit creator if one was sent, else whoever is logged in.
func (s *TournamentService) resolveCreator(ctx context.Context, creator *int64) (*int64, error) {
	if creator == nil {
		if playerID, ok := middleware.GetPlayerIDFromContext(ctx); ok {
			return &playerID, nil
		}
		return nil, nil
	}

	if _, err := s.stores.Players.GetPlayer(ctx, *creator); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invalidField("creator", ErrPlayerNotFound)
		}
		return nil, fmt.Errorf("failed to get creator: %w", err)
	}
	return creator, nil
}

// CreateTournament stores the tournament and lays out its first round. When the bracket cannot be
// generated the tournament row is removed again, so callers either get both or neither.
func (s *TournamentService) CreateTournament(ctx context.Context, input TournamentInput) (*bracket.Tournament, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	creatorID, err := s.resolveCreator(ctx, input.Creator)
	if err != nil {
		return nil, err
	}

	tournament := &bracket.Tournament{
		Title:        input.Title,
		Slots:        input.Slots,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		WinningPrize: input.WinningPrize,
		Details:      input.Details,
		Image:        input.Image,
		CreatorID:    creatorID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.stores.Tournaments.CreateTournament(ctx, s.db, tournament); err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}

	if _, err := s.brackets.GenerateBracket(ctx, tournament.ID); err != nil {
		s.discardTournament(ctx, tournament.ID, err)

		if errors.Is(err, bracket.ErrInvalidBracketSize) || errors.Is(err, bracket.ErrTournamentNotFound) {
			return nil, &ValidationError{Message: err.Error(), Err: err}
		}
		return nil, fmt.Errorf("failed to generate bracket: %w", err)
	}

	return tournament, nil
}

// discardTournament undoes a half-finished creation. It runs even if the request was cancelled.
func (s *TournamentService) discardTournament(ctx context.Context, id int64, cause error) {
	ctx = context.WithoutCancel(ctx)
	if _, err := s.stores.Tournaments.DeleteTournament(ctx, s.db, id); err != nil {
		slog.Error("failed to roll back tournament", "tournament_id", id, "cause", cause, "error", err)
		return
	}
	slog.Info("rolled back tournament", "tournament_id", id, "cause", cause)
}

func (s *TournamentService) ListTournaments(ctx context.Context) ([]bracket.Tournament, error) {
	return s.stores.Tournaments.ListTournaments(ctx)
}

func (s *TournamentService) GetTournamentsForPlayer(ctx context.Context) ([]bracket.Tournament, error) {
	playerID, ok := middleware.GetPlayerIDFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("player ID not found in the context")
	}
	return s.stores.Tournaments.GetTournamentsByCreator(ctx, playerID)
}

// GetTournament returns nil when there is no tournament with that ID.
func (s *TournamentService) GetTournament(ctx context.Context, id int64) (*bracket.Tournament, error) {
	tournament, err := s.stores.Tournaments.GetTournament(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return tournament, nil
}

// GetTournamentData loads everything the bracket page shows. A missing tournament yields nil.
func (s *TournamentService) GetTournamentData(ctx context.Context, id int64) (*TournamentData, error) {
	tournament, err := s.GetTournament(ctx, id)
	if err != nil || tournament == nil {
		return nil, err
	}

	data := &TournamentData{Tournament: tournament}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		matches, err := s.stores.Matches.GetMatches(gctx, id)
		if err != nil {
			return fmt.Errorf("failed to get matches: %w", err)
		}
		data.Matches = matches
		return nil
	})
	g.Go(func() error {
		results, err := s.stores.Results.GetResults(gctx, id)
		if err != nil {
			return fmt.Errorf("failed to get results: %w", err)
		}
		data.Results = results
		return nil
	})
	g.Go(func() error {
		teams, err := s.stores.Teams.ListTeams(gctx)
		if err != nil {
			return fmt.Errorf("failed to get teams: %w", err)
		}
		data.Teams = teams
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

// UpdateTournament replaces the descriptive fields. The slot count and the generated bracket stay
// as they are. A missing tournament yields nil.
func (s *TournamentService) UpdateTournament(ctx context.Context, id int64, input TournamentInput) (*bracket.Tournament, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	tournament, err := s.GetTournament(ctx, id)
	if err != nil || tournament == nil {
		return nil, err
	}

	if input.Creator != nil {
		creatorID, err := s.resolveCreator(ctx, input.Creator)
		if err != nil {
			return nil, err
		}
		tournament.CreatorID = creatorID
	}

	tournament.Title = input.Title
	tournament.StartDate = input.StartDate
	tournament.EndDate = input.EndDate
	tournament.WinningPrize = input.WinningPrize
	tournament.Details = input.Details
	tournament.Image = input.Image

	if err := s.stores.Tournaments.UpdateTournament(ctx, s.db, tournament); err != nil {
		return nil, fmt.Errorf("failed to update tournament: %w", err)
	}
	return tournament, nil
}

// DeleteTournament removes the tournament with its matches and results.
func (s *TournamentService) DeleteTournament(ctx context.Context, id int64) (bool, error) {
	return s.stores.Tournaments.DeleteTournament(ctx, s.db, id)
}

// SetTournamentImage uploads the image and points the tournament at its public URL.
// A missing tournament yields nil and nothing is uploaded.
func (s *TournamentService) SetTournamentImage(ctx context.Context, id int64, filename, contentType string, body io.Reader) (*bracket.Tournament, error) {
	if s.uploader == nil {
		return nil, ErrUploadsDisabled
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, invalidField("image", ErrUnsupportedUpload)
	}

	tournament, err := s.GetTournament(ctx, id)
	if err != nil || tournament == nil {
		return nil, err
	}

	key := fmt.Sprintf("tournament_images/%s%s", uuid.NewString(), strings.ToLower(filepath.Ext(filename)))
	uploaded, err := s.uploader.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, err
	}

	if err := s.stores.Tournaments.SetTournamentImage(ctx, id, uploaded.URL); err != nil {
		return nil, fmt.Errorf("failed to save tournament image: %w", err)
	}
	tournament.Image = &uploaded.URL
	return tournament, nil
}
