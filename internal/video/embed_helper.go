package video

import (
	"net/url"
	"path"
	"strings"
)

type EmbedType int

const (
	EmbedTypeNone EmbedType = iota
	EmbedTypeYouTube
	EmbedTypeTwitch
	EmbedTypeVideo
	EmbedTypeIframe
)

// EmbedInfo says how a match link should be shown on the bracket page.
type EmbedInfo struct {
	Type EmbedType
	URL  string
}

var videoExtensions = []string{".mp4", ".webm", ".ogg", ".mov"}

// GetEmbedInfo turns a match stream link into something the page can embed. parentHost is the
// site's own host name, which Twitch requires on its player URL.
func GetEmbedInfo(link *string, parentHost string) EmbedInfo {
	if link == nil || strings.TrimSpace(*link) == "" {
		return EmbedInfo{Type: EmbedTypeNone}
	}

	raw := strings.TrimSpace(*link)
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return EmbedInfo{Type: EmbedTypeNone}
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch host {
	case "youtube.com", "m.youtube.com":
		if strings.HasPrefix(u.Path, "/embed/") {
			return EmbedInfo{Type: EmbedTypeYouTube, URL: raw}
		}
		if id := u.Query().Get("v"); id != "" {
			return youTube(id)
		}
		if id, ok := strings.CutPrefix(u.Path, "/live/"); ok && id != "" {
			return youTube(id)
		}
	case "youtu.be":
		if id := strings.Trim(u.Path, "/"); id != "" {
			return youTube(id)
		}
	case "twitch.tv":
		channel := strings.Trim(u.Path, "/")
		if channel != "" && !strings.Contains(channel, "/") && parentHost != "" {
			q := url.Values{"channel": {channel}, "parent": {parentHost}}
			return EmbedInfo{Type: EmbedTypeTwitch, URL: "https://player.twitch.tv/?" + q.Encode()}
		}
	}

	ext := strings.ToLower(path.Ext(u.Path))
	for _, videoExt := range videoExtensions {
		if ext == videoExt {
			return EmbedInfo{Type: EmbedTypeVideo, URL: raw}
		}
	}

	return EmbedInfo{Type: EmbedTypeIframe, URL: raw}
}

func youTube(id string) EmbedInfo {
	return EmbedInfo{Type: EmbedTypeYouTube, URL: "https://www.youtube.com/embed/" + url.PathEscape(id)}
}
