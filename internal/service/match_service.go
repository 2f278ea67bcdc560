package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/AdamBeresnev/tournament-app/internal/bracket"
	"github.com/AdamBeresnev/tournament-app/internal/store"
	"github.com/jmoiron/sqlx"
)

type MatchService struct {
	db     *sqlx.DB
	stores *store.Stores
}

func NewMatchService(db *sqlx.DB, stores *store.Stores) *MatchService {
	return &MatchService{db: db, stores: stores}
}

type MatchInput struct {
	Name       string     `json:"name" validate:"required"`
	Tournament *int64     `json:"tournament"`
	Team1      *int64     `json:"team1"`
	Team2      *int64     `json:"team2"`
	Time       *time.Time `json:"time"`
	Link       *string    `json:"match_link"`
	Spectator  *string    `json:"spectator"`
}

type SkippedField struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type MatchUpdateResult struct {
	Match   *bracket.Match
	Applied []string
	Skipped []SkippedField
}

func (s *MatchService) CreateMatch(ctx context.Context, input MatchInput) (*bracket.Match, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	refs := []struct {
		field string
		kind  refKind
		id    *int64
	}{
		{"tournament", tournamentRef, input.Tournament},
		{"team1", teamRef, input.Team1},
		{"team2", teamRef, input.Team2},
	}
	for _, r := range refs {
		if r.id == nil {
			continue
		}
		ok, err := s.resolves(ctx, r.kind, *r.id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, invalidField(r.field, refError(r.kind))
		}
	}

	match := &bracket.Match{
		Name:         input.Name,
		TournamentID: input.Tournament,
		Team1ID:      input.Team1,
		Team2ID:      input.Team2,
		Time:         input.Time,
		Link:         input.Link,
		Spectator:    input.Spectator,
	}
	if err := s.stores.Matches.CreateMatch(ctx, s.db, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return match, nil
}

// GetMatch returns nil when there is no match with that ID.
func (s *MatchService) GetMatch(ctx context.Context, id int64) (*bracket.Match, error) {
	match, err := s.stores.Matches.GetMatch(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return match, nil
}

func (s *MatchService) ListMatches(ctx context.Context) ([]bracket.Match, error) {
	return s.stores.Matches.ListMatches(ctx)
}

func (s *MatchService) ListTournamentMatches(ctx context.Context, tournamentID int64) ([]bracket.Match, error) {
	return s.stores.Matches.GetMatches(ctx, tournamentID)
}

// UpdateMatch applies the supplied fields and saves the match once. A reference to a tournament or
// team that does not exist leaves that field untouched and is reported in Skipped; the other fields
// still apply. A missing match yields nil.
func (s *MatchService) UpdateMatch(ctx context.Context, id int64, patch MatchPatch) (*MatchUpdateResult, error) {
	match, err := s.GetMatch(ctx, id)
	if err != nil || match == nil {
		return nil, err
	}

	result := &MatchUpdateResult{Match: match, Applied: []string{}, Skipped: []SkippedField{}}
	for _, step := range patch.steps() {
		if step.reject != "" {
			result.Skipped = append(result.Skipped, SkippedField{Field: step.field, Reason: step.reject})
			continue
		}

		if step.ref != noRef && step.id != nil {
			ok, err := s.resolves(ctx, step.ref, *step.id)
			if err != nil {
				return nil, err
			}
			if !ok {
				result.Skipped = append(result.Skipped, SkippedField{Field: step.field, Reason: refError(step.ref).Error()})
				continue
			}
		}

		step.apply(match)
		result.Applied = append(result.Applied, step.field)
	}

	if err := s.stores.Matches.UpdateMatch(ctx, s.db, match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	for _, skipped := range result.Skipped {
		slog.Info("skipped match field", "match_id", id, "field", skipped.Field, "reason", skipped.Reason)
	}
	return result, nil
}

// DeleteMatch reports whether a match was removed.
func (s *MatchService) DeleteMatch(ctx context.Context, id int64) (bool, error) {
	return s.stores.Matches.DeleteMatch(ctx, s.db, id)
}

func (s *MatchService) resolves(ctx context.Context, kind refKind, id int64) (bool, error) {
	var err error
	switch kind {
	case tournamentRef:
		_, err = s.stores.Tournaments.GetTournament(ctx, id)
	case teamRef:
		_, err = s.stores.Teams.GetTeam(ctx, id)
	default:
		return true, nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to resolve reference %d: %w", id, err)
	}
	return true, nil
}

func refError(kind refKind) error {
	if kind == tournamentRef {
		return bracket.ErrTournamentNotFound
	}
	return ErrTeamNotFound
}
