// Package musixmatch provides a client for the Musixmatch web service API v1.1.
//
// Every endpoint method issues a single authenticated request and returns the
// parsed response envelope, or one of two error kinds: *APIError when the
// service reports a non-success status inside its envelope, *TransportError
// when the request fails below that level.
//
// Example usage:
//
//	client := musixmatch.New("your-api-key")
//
//	env, err := client.TrackSearch(ctx, musixmatch.Params{
//	    "q_artist": "Daft Punk",
//	    "q_track":  "Harder Better Faster Stronger",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var body musixmatch.TrackListBody
//	if err := env.DecodeBody(&body); err != nil {
//	    log.Fatal(err)
//	}
package musixmatch
