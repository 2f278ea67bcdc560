package views

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/AdamBeresnev/tournament-app/internal/bracket"
	"github.com/AdamBeresnev/tournament-app/internal/middleware"
	"github.com/AdamBeresnev/tournament-app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareBracketData(t *testing.T) {
	red, blue := int64(1), int64(2)
	matches := []bracket.Match{
		{ID: 12, Name: "Round 1 Match 2"},
		{ID: 30, Name: "Showmatch"},
		{ID: 11, Name: "Round 1 Match 1", Team1ID: &red, Team2ID: &blue},
		{ID: 20, Name: "Round 2 Match 1"},
	}
	teams := []bracket.Team{{ID: red, Title: "Red"}, {ID: blue, Title: "Blue"}}
	results := []bracket.Result{{MatchID: 11, WinnerID: &blue}, {MatchID: 12}}

	data := PrepareBracketData(teams, matches, results)

	assert.Equal(t, []int{0, 1, 2}, data.RoundNums)
	require.Len(t, data.Rounds[1], 2)
	assert.Equal(t, int64(11), data.Rounds[1][0].ID)
	assert.Equal(t, int64(12), data.Rounds[1][1].ID)
	assert.Equal(t, int64(30), data.Rounds[0][0].ID)
	assert.Equal(t, map[int64]int64{11: blue}, data.Winners)
	assert.Equal(t, "Red", data.TeamMap[red].Title)
}

func TestTournamentPage(t *testing.T) {
	red, blue := int64(1), int64(2)
	data := TournamentPageData{
		Tournament: &bracket.Tournament{Title: "Cup <Finals>", StartDate: "2026-05-01", EndDate: "2026-05-03", WinningPrize: "Trophy", Details: "Bo3"},
		Teams:      []bracket.Team{{ID: red, Title: "Red"}, {ID: blue, Title: "Blue & Co"}},
		Matches: []bracket.Match{
			{ID: 1, Name: "Round 1 Match 1", Team1ID: &red, Team2ID: &blue, Link: utils.Ptr("https://youtu.be/abc")},
			{ID: 2, Name: "Round 1 Match 2"},
		},
		Results: []bracket.Result{{MatchID: 1, WinnerID: &red}},
		Host:    "example.com",
	}

	ctx := middleware.WithPlayer(context.Background(), &bracket.Player{ID: 5, Name: "Viewer"})

	var buf bytes.Buffer
	require.NoError(t, TournamentPage(data).Render(ctx, &buf))
	html := buf.String()

	assert.Contains(t, html, "<h1>Cup &lt;Finals&gt;</h1>")
	assert.Contains(t, html, "Signed in as Viewer")
	assert.Contains(t, html, `<div class="team winner">Red</div>`)
	assert.Contains(t, html, "Blue &amp; Co")
	assert.Contains(t, html, "https://www.youtube.com/embed/abc")
	assert.Contains(t, html, "<div class=\"team\">TBD</div>")
}

func TestMatchCard(t *testing.T) {
	red := int64(1)
	scheduled := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	bd := PrepareBracketData([]bracket.Team{{ID: red, Title: "Red"}}, nil, nil)

	testCases := []struct {
		name     string
		link     *string
		expected string
	}{
		{"video file", utils.Ptr("https://cdn.example.com/final.mp4"), `<video src="https://cdn.example.com/final.mp4" controls></video>`},
		{"other page", utils.Ptr("https://stream.example.com/live?a=1&b=2"), `<a class="stream" href="https://stream.example.com/live?a=1&amp;b=2" rel="noopener">Watch</a>`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := bracket.Match{ID: 7, Name: "Round 1 Match 3", Team1ID: &red, Time: &scheduled, Spectator: utils.Ptr("Row <B>"), Link: tc.link}

			var buf bytes.Buffer
			require.NoError(t, MatchCard(m, bd, "example.com").Render(context.Background(), &buf))
			html := buf.String()

			assert.Contains(t, html, `<article class="match" id="match-7">`)
			assert.Contains(t, html, `<div class="team">Red</div>`)
			assert.Contains(t, html, `<div class="team">TBD</div>`)
			assert.Contains(t, html, `datetime="2026-05-01T18:00:00Z"`)
			assert.Contains(t, html, "Row &lt;B&gt;")
			assert.Contains(t, html, tc.expected)
		})
	}
}
