package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError maps a non-2xx answer to one of the package sentinels.
// It returns nil for 2xx.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	switch {
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: remote throttling (429)", ErrUpstreamUnavailable)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d", ErrUpstreamUnavailable, code)
	default:
		return fmt.Errorf("%w: http %d", ErrUnexpectedStatus, code)
	}
}
