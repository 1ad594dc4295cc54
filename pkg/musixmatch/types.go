package musixmatch

// Typed bodies for the common endpoint payloads. The dispatcher itself is
// schema-agnostic; decode these with Envelope.DecodeBody when convenient.
// Fields follow the service's wire names; unknown fields are ignored.

// Track describes a catalogue track.
type Track struct {
	TrackID          int    `json:"track_id"`
	TrackName        string `json:"track_name"`
	TrackRating      int    `json:"track_rating"`
	CommontrackID    int    `json:"commontrack_id"`
	Instrumental     int    `json:"instrumental"`
	Explicit         int    `json:"explicit"`
	HasLyrics        int    `json:"has_lyrics"`
	HasSubtitles     int    `json:"has_subtitles"`
	HasRichsync      int    `json:"has_richsync"`
	NumFavourite     int    `json:"num_favourite"`
	AlbumID          int    `json:"album_id"`
	AlbumName        string `json:"album_name"`
	ArtistID         int    `json:"artist_id"`
	ArtistName       string `json:"artist_name"`
	TrackShareURL    string `json:"track_share_url"`
	TrackEditURL     string `json:"track_edit_url"`
	UpdatedTime      string `json:"updated_time"`
	PrimaryGenres    Genres `json:"primary_genres"`
	SecondaryGenres  Genres `json:"secondary_genres"`
	Restricted       int    `json:"restricted"`
	FirstReleaseDate string `json:"first_release_date,omitempty"`
}

// Lyrics is the body of track.lyrics.get and matcher.lyrics.get.
type Lyrics struct {
	LyricsID          int    `json:"lyrics_id"`
	Restricted        int    `json:"restricted"`
	Instrumental      int    `json:"instrumental"`
	LyricsBody        string `json:"lyrics_body"`
	LyricsLanguage    string `json:"lyrics_language"`
	ScriptTrackingURL string `json:"script_tracking_url"`
	PixelTrackingURL  string `json:"pixel_tracking_url"`
	LyricsCopyright   string `json:"lyrics_copyright"`
	UpdatedTime       string `json:"updated_time"`
}

// Snippet is the body of track.snippet.get.
type Snippet struct {
	SnippetID         int    `json:"snippet_id"`
	SnippetLanguage   string `json:"snippet_language"`
	Restricted        int    `json:"restricted"`
	Instrumental      int    `json:"instrumental"`
	SnippetBody       string `json:"snippet_body"`
	ScriptTrackingURL string `json:"script_tracking_url"`
	PixelTrackingURL  string `json:"pixel_tracking_url"`
	HTMLTrackingURL   string `json:"html_tracking_url"`
	UpdatedTime       string `json:"updated_time"`
}

// Subtitle is the body of track.subtitle.get and matcher.subtitle.get.
type Subtitle struct {
	SubtitleID       int    `json:"subtitle_id"`
	Restricted       int    `json:"restricted"`
	SubtitleBody     string `json:"subtitle_body"`
	SubtitleLanguage string `json:"subtitle_language"`
	SubtitleLength   int    `json:"subtitle_length"`
	LyricsCopyright  string `json:"lyrics_copyright"`
	UpdatedTime      string `json:"updated_time"`
}

// Artist describes a catalogue artist.
type Artist struct {
	ArtistID      int    `json:"artist_id"`
	ArtistName    string `json:"artist_name"`
	ArtistCountry string `json:"artist_country"`
	ArtistRating  int    `json:"artist_rating"`
	Restricted    int    `json:"restricted"`
	UpdatedTime   string `json:"updated_time"`
}

// Album describes a catalogue album.
type Album struct {
	AlbumID          int    `json:"album_id"`
	AlbumName        string `json:"album_name"`
	AlbumRating      int    `json:"album_rating"`
	AlbumReleaseDate string `json:"album_release_date"`
	AlbumTrackCount  int    `json:"album_track_count"`
	ArtistID         int    `json:"artist_id"`
	ArtistName       string `json:"artist_name"`
	AlbumCopyright   string `json:"album_copyright"`
	AlbumLabel       string `json:"album_label"`
	Restricted       int    `json:"restricted"`
	UpdatedTime      string `json:"updated_time"`
}

// MusicGenre describes an entry of the fixed genre catalogue.
type MusicGenre struct {
	MusicGenreID           int    `json:"music_genre_id"`
	MusicGenreParentID     int    `json:"music_genre_parent_id"`
	MusicGenreName         string `json:"music_genre_name"`
	MusicGenreNameExtended string `json:"music_genre_name_extended"`
	MusicGenreVanity       string `json:"music_genre_vanity"`
}

// Genres wraps the genre list shape nested inside tracks.
type Genres struct {
	MusicGenreList []struct {
		MusicGenre MusicGenre `json:"music_genre"`
	} `json:"music_genre_list"`
}

// TrackListBody is the body of track.search, chart.tracks.get and
// album.tracks.get.
type TrackListBody struct {
	TrackList []struct {
		Track Track `json:"track"`
	} `json:"track_list"`
}

// TrackBody is the body of track.get and matcher.track.get.
type TrackBody struct {
	Track Track `json:"track"`
}

// LyricsBody is the body of the lyrics endpoints.
type LyricsBody struct {
	Lyrics Lyrics `json:"lyrics"`
}

// SnippetBody is the body of track.snippet.get.
type SnippetBody struct {
	Snippet Snippet `json:"snippet"`
}

// SubtitleBody is the body of the subtitle endpoints.
type SubtitleBody struct {
	Subtitle Subtitle `json:"subtitle"`
}

// ArtistListBody is the body of artist.search, artist.related.get and
// chart.artists.get.
type ArtistListBody struct {
	ArtistList []struct {
		Artist Artist `json:"artist"`
	} `json:"artist_list"`
}

// ArtistBody is the body of artist.get.
type ArtistBody struct {
	Artist Artist `json:"artist"`
}

// AlbumListBody is the body of artist.albums.get.
type AlbumListBody struct {
	AlbumList []struct {
		Album Album `json:"album"`
	} `json:"album_list"`
}

// AlbumBody is the body of album.get.
type AlbumBody struct {
	Album Album `json:"album"`
}

// MusicGenreListBody is the body of music.genres.get.
type MusicGenreListBody struct {
	MusicGenreList []struct {
		MusicGenre MusicGenre `json:"music_genre"`
	} `json:"music_genre_list"`
}
