// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

// Package cronsubmit posts a cron expression to a configured endpoint.
//
// The request is a single form-encoded POST with one field, "cron".
// Any 2xx response is success. Everything else, including a failure to
// reach the server at all, is a [*TransportError]. There are no
// retries and no timeout beyond what the caller's context and the
// configured [http.Client] impose.
package cronsubmit
