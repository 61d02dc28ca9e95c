// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli holds the pieces shared by cronedit's command-line
// entry points: categorized errors with remediation hints, exit codes
// that skip the generic error line, JSON output, and the command
// logger.
package cli
