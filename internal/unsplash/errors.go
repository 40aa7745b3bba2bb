package unsplash

import "errors"

var (
	ErrNoCredential   = errors.New("unsplash access key is not configured")
	ErrNoResults      = errors.New("no matching photos found")
	ErrNetworkFailure = errors.New("photo provider unreachable")
	ErrBadResponse    = errors.New("unexpected response from photo provider")
)

// outcome maps an error to the label used in the request counter.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNoCredential):
		return "no_credential"
	case errors.Is(err, ErrNoResults):
		return "no_results"
	case errors.Is(err, ErrNetworkFailure):
		return "network"
	default:
		return "bad_response"
	}
}
