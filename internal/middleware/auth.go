package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/AdamBeresnev/tournament-app/internal/bracket"
	"github.com/AdamBeresnev/tournament-app/internal/config"
	"github.com/AdamBeresnev/tournament-app/internal/httputil"
	"github.com/AdamBeresnev/tournament-app/internal/store"
	"github.com/alexedwards/scs/v2"
	"github.com/markbates/goth"
	"github.com/markbates/goth/providers/discord"
	"github.com/markbates/goth/providers/google"
)

type ContextKey string

const PlayerIDKey ContextKey = "playerID"

// SessionPlayerKey is where the logged in player's ID lives in the session.
const SessionPlayerKey = "playerID"

const GuestPlayerID int64 = 1

// InitAuth registers the OAuth providers that have credentials configured.
func InitAuth(cfg *config.Config) {
	var providers []goth.Provider

	if cfg.DiscordKey != "" {
		providers = append(providers, discord.New(cfg.DiscordKey, cfg.DiscordSecret, cfg.DiscordCallbackURL, discord.ScopeIdentify, discord.ScopeEmail))
	}
	if cfg.GoogleKey != "" {
		providers = append(providers, google.New(cfg.GoogleKey, cfg.GoogleSecret, cfg.GoogleCallbackURL, "email", "profile"))
	}

	goth.UseProviders(providers...)
}

// LoadAuthenticatedPlayer puts the session's player into the request context when there is one.
// Anonymous requests pass through untouched.
func LoadAuthenticatedPlayer(sessionManager *scs.SessionManager, playerStore *store.PlayerStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			idStr := sessionManager.GetString(r.Context(), SessionPlayerKey)
			if idStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			playerID, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				sessionManager.Remove(r.Context(), SessionPlayerKey)
				next.ServeHTTP(w, r)
				return
			}

			player, err := playerStore.GetPlayer(r.Context(), playerID)
			if err != nil {
				// Player was deleted since login.
				sessionManager.Remove(r.Context(), SessionPlayerKey)
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithPlayer(r.Context(), player)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithPlayer(ctx context.Context, player *bracket.Player) context.Context {
	ctx = context.WithValue(ctx, PlayerIDKey, player.ID)
	return context.WithValue(ctx, bracket.PlayerKey, player)
}

func GetPlayerIDFromContext(ctx context.Context) (int64, bool) {
	val := ctx.Value(PlayerIDKey)
	if val == nil {
		return 0, false
	}

	id, ok := val.(int64)
	return id, ok
}

func GetAuthenticatedPlayer(ctx context.Context) *bracket.Player {
	val := ctx.Value(bracket.PlayerKey)
	if val == nil {
		return nil
	}
	player, ok := val.(*bracket.Player)
	if !ok {
		return nil
	}
	return player
}

// RequireAuth rejects requests that carry no logged in player.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetPlayerIDFromContext(r.Context()); !ok {
			httputil.WriteJSON(w, http.StatusUnauthorized, httputil.ErrorResponse{Error: "Login required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
