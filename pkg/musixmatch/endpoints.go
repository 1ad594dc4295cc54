package musixmatch

import (
	"context"
	"fmt"
	"net/http"
	"sort"
)

// Endpoint is a fixed binding of a wire name to an HTTP method.
type Endpoint struct {
	Name   string
	Method string
}

// endpointTable maps every remote endpoint's wire name to its HTTP method.
// The wire name doubles as the URL path under the base URL.
var endpointTable = map[string]string{
	"chart.artists.get":              http.MethodGet,
	"chart.tracks.get":               http.MethodGet,
	"track.search":                   http.MethodGet,
	"track.get":                      http.MethodGet,
	"track.lyrics.get":               http.MethodGet,
	"track.lyrics.post":              http.MethodPost,
	"track.lyrics.mood.get":          http.MethodGet,
	"track.snippet.get":              http.MethodGet,
	"track.subtitle.get":             http.MethodGet,
	"track.richsync.get":             http.MethodGet,
	"track.lyrics.translation.get":   http.MethodGet,
	"track.subtitle.translation.get": http.MethodGet,
	"music.genres.get":               http.MethodGet,
	"matcher.lyrics.get":             http.MethodGet,
	"matcher.track.get":              http.MethodGet,
	"matcher.subtitle.get":           http.MethodGet,
	"artist.get":                     http.MethodGet,
	"artist.search":                  http.MethodGet,
	"artist.albums.get":              http.MethodGet,
	"artist.related.get":             http.MethodGet,
	"album.get":                      http.MethodGet,
	"album.tracks.get":               http.MethodGet,
}

// Endpoints lists every known endpoint binding, sorted by name.
func Endpoints() []Endpoint {
	out := make([]Endpoint, 0, len(endpointTable))
	for name, method := range endpointTable {
		out = append(out, Endpoint{Name: name, Method: method})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Call invokes an endpoint by its wire name, e.g. "track.search". Unknown
// names fail before any request is made.
func (c *Client) Call(ctx context.Context, name string, params Params) (*Envelope, error) {
	method, ok := endpointTable[name]
	if !ok {
		return nil, fmt.Errorf("unknown endpoint %q", name)
	}
	return c.dispatch(ctx, method, name, params)
}

// ChartArtistsGet returns the top artists of a country.
func (c *Client) ChartArtistsGet(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "chart.artists.get", params)
}

// ChartTracksGet returns the top tracks of a country.
func (c *Client) ChartTracksGet(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "chart.tracks.get", params)
}

// TrackSearch searches the track database.
func (c *Client) TrackSearch(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "track.search", params)
}

// TrackGet returns a track by id.
func (c *Client) TrackGet(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "track.get", params)
}

// TrackLyricsGet returns the lyrics of a track.
func (c *Client) TrackLyricsGet(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "track.lyrics.get", params)
}

// TrackLyricsPost submits lyrics for a track. The service expects the
// submission in the query string, not a request body.
func (c *Client) TrackLyricsPost(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "track.lyrics.post", params)
}

// TrackLyricsMoodGet returns the mood vector of a track's lyrics.
func (c *Client) TrackLyricsMoodGet(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "track.lyrics.mood.get", params)
}

// TrackSnippetGet returns the snippet (a one-line highlight) of a track.
func (c *Client) TrackSnippetGet(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "track.snippet.get", params)
}

// TrackSubtitleGet returns the time-synchronized lyrics of a track.
func (c *Client) TrackSubtitleGet(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "track.subtitle.get", params)
}

// TrackRichsyncGet returns the word-by-word synchronized lyrics of a track.
func (c *Client) TrackRichsyncGet(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "track.richsync.get", params)
}

// TrackLyricsTranslationGet returns a translated version of a track's lyrics.
func (c *Client) TrackLyricsTranslationGet(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "track.lyrics.translation.get", params)
}

// TrackSubtitleTranslationGet returns a translated version of a track's subtitle.
func (c *Client) TrackSubtitleTranslationGet(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "track.subtitle.translation.get", params)
}

// MusicGenresGet returns the fixed catalogue of music genres. It takes no
// parameters; only the credential is sent.
func (c *Client) MusicGenresGet(ctx context.Context) (*Envelope, error) {
	return c.Call(ctx, "music.genres.get", nil)
}

// MatcherLyricsGet returns the lyrics best matching a free-form track/artist query.
func (c *Client) MatcherLyricsGet(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "matcher.lyrics.get", params)
}

// MatcherTrackGet returns the track best matching a free-form track/artist query.
func (c *Client) MatcherTrackGet(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "matcher.track.get", params)
}

// MatcherSubtitleGet returns the subtitle best matching a free-form query.
func (c *Client) MatcherSubtitleGet(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "matcher.subtitle.get", params)
}

// ArtistGet returns an artist by id.
func (c *Client) ArtistGet(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "artist.get", params)
}

// ArtistSearch searches the artist database.
func (c *Client) ArtistSearch(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "artist.search", params)
}

// ArtistAlbumsGet returns the discography of an artist.
func (c *Client) ArtistAlbumsGet(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "artist.albums.get", params)
}

// ArtistRelatedGet returns artists related to the given one.
func (c *Client) ArtistRelatedGet(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "artist.related.get", params)
}

// AlbumGet returns an album by id.
func (c *Client) AlbumGet(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "album.get", params)
}

// AlbumTracksGet returns the track list of an album.
func (c *Client) AlbumTracksGet(ctx context.Context, params Params) (*Envelope, error) {
	return c.Call(ctx, "album.tracks.get", params)
}
