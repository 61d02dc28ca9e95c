// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for cronedit packages.
//
// [RequireReceive], [RequireSend], and [RequireClosed] encapsulate the
// timeout safety valve pattern (select with time.After fallback) so
// that tests exercising asynchronous submission do not need direct
// time.After calls. A hung test fails with a message naming what it
// was waiting for instead of stalling the whole run.
//
// [WriteFile] writes a fixture into a per-test temporary directory.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
package testutil
