// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package cronsubmit

import (
	"errors"
	"fmt"
)

// TransportError reports a submission that did not succeed. StatusCode
// is zero when no response was received. Body holds the start of an
// error response, if the server sent one.
type TransportError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (err *TransportError) Error() string {
	if err.StatusCode == 0 {
		return fmt.Sprintf("cronsubmit: POST %s: %v", err.URL, err.Err)
	}
	if err.Body != "" {
		return fmt.Sprintf("cronsubmit: POST %s: HTTP %d: %s", err.URL, err.StatusCode, err.Body)
	}
	return fmt.Sprintf("cronsubmit: POST %s: HTTP %d", err.URL, err.StatusCode)
}

func (err *TransportError) Unwrap() error {
	return err.Err
}

// IsTransportError reports whether err is a failed submission.
func IsTransportError(err error) bool {
	var transportError *TransportError
	return errors.As(err, &transportError)
}
