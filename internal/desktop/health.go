package desktop

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// upStatuses mirror what a booting web UI may answer with before it is fully
// routed: anything in this set means the socket is served.
func upStatus(code int) bool {
	switch code {
	case http.StatusOK, http.StatusFound, http.StatusForbidden, http.StatusNotFound:
		return true
	}
	return false
}

// WaitUntilUp polls GET <baseURL>/ at a constant interval until the server
// answers with an acceptable status or the timeout elapses.
func WaitUntilUp(ctx context.Context, baseURL string, interval, timeout time.Duration, notify backoff.Notify) error {
	client := &http.Client{
		Timeout: time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	operation := func() (int, error) {
		resp, err := client.Get(baseURL + "/")
		if err != nil {
			return 0, err
		}
		resp.Body.Close()
		if !upStatus(resp.StatusCode) {
			return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return resp.StatusCode, nil
	}

	opts := []backoff.RetryOption{
		backoff.WithBackOff(backoff.NewConstantBackOff(interval)),
		backoff.WithMaxElapsedTime(timeout),
	}
	if notify != nil {
		opts = append(opts, backoff.WithNotify(notify))
	}

	_, err := backoff.Retry(ctx, operation, opts...)
	return err
}
