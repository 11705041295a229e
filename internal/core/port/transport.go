package port

import "context"

type Getter interface {
	// Get issues a GET request expecting a JSON response and returns the
	// raw response body.
	Get(ctx context.Context, url string) ([]byte, error)
}

type Poster interface {
	// Post issues a POST request with a JSON body and returns the raw
	// response body.
	Post(ctx context.Context, url string, body []byte) ([]byte, error)
}
