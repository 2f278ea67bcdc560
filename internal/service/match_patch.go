package service

import (
	"encoding/json"
	"time"

	"github.com/AdamBeresnev/tournament-app/internal/bracket"
)

// Field is one optional entry of a patch. Set separates a key that was left out from one that was
// sent as null, in which case Value is nil.
type Field[T any] struct {
	Set   bool
	Value *T
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

func Set[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: &v}
}

func Null[T any]() Field[T] {
	return Field[T]{Set: true}
}

type MatchPatch struct {
	Name       Field[string]    `json:"name"`
	Tournament Field[int64]     `json:"tournament"`
	Team1      Field[int64]     `json:"team1"`
	Team2      Field[int64]     `json:"team2"`
	Time       Field[time.Time] `json:"time"`
	Link       Field[string]    `json:"match_link"`
	Spectator  Field[string]    `json:"spectator"`
}

type refKind int

const (
	noRef refKind = iota
	tournamentRef
	teamRef
)

type patchStep struct {
	field string
	ref   refKind
	// id is the referenced row for ref fields, nil when the reference is being cleared.
	id     *int64
	reject string
	apply  func(m *bracket.Match)
}

// steps lists the supplied fields in a fixed order.
func (p MatchPatch) steps() []patchStep {
	var steps []patchStep

	if p.Name.Set {
		step := patchStep{field: "name"}
		if p.Name.Value == nil {
			step.reject = "name must not be null"
		} else {
			name := *p.Name.Value
			step.apply = func(m *bracket.Match) { m.Name = name }
		}
		steps = append(steps, step)
	}

	refs := []struct {
		field  string
		kind   refKind
		value  Field[int64]
		target func(m *bracket.Match) **int64
	}{
		{"tournament", tournamentRef, p.Tournament, func(m *bracket.Match) **int64 { return &m.TournamentID }},
		{"team1", teamRef, p.Team1, func(m *bracket.Match) **int64 { return &m.Team1ID }},
		{"team2", teamRef, p.Team2, func(m *bracket.Match) **int64 { return &m.Team2ID }},
	}
	for _, r := range refs {
		if !r.value.Set {
			continue
		}
		id, target := r.value.Value, r.target
		steps = append(steps, patchStep{
			field: r.field,
			ref:   r.kind,
			id:    id,
			apply: func(m *bracket.Match) { *target(m) = id },
		})
	}

	if p.Time.Set {
		value := p.Time.Value
		steps = append(steps, patchStep{field: "time", apply: func(m *bracket.Match) { m.Time = value }})
	}
	if p.Link.Set {
		value := p.Link.Value
		steps = append(steps, patchStep{field: "match_link", apply: func(m *bracket.Match) { m.Link = value }})
	}
	if p.Spectator.Set {
		value := p.Spectator.Value
		steps = append(steps, patchStep{field: "spectator", apply: func(m *bracket.Match) { m.Spectator = value }})
	}

	return steps
}
