// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

// Package cron parses, classifies, and rebuilds the restricted 5-field
// cron expressions edited by the cron widget.
//
// Supported syntax:
//
//	┌───────────── minute (0-59)
//	│ ┌───────────── hour (0-23)
//	│ │ ┌───────────── day of month (1-31)
//	│ │ │ ┌───────────── month (1-12)
//	│ │ │ │ ┌───────────── day of week (0-6, 0=Sunday)
//	│ │ │ │ │
//	* * * * *
//
// Each field is either the wildcard "*" or a plain decimal value. The
// multi-frequency grammar (see [Grammar]) additionally accepts a comma
// list in the one field that carries the frequency of the schedule's
// category. There are no ranges, no steps, and no named days or months.
//
// Only six shapes are accepted, one per [Category]:
//
//	minute   * * * * *
//	hour     ? * * * *
//	day      ? ? * * *
//	week     ? ? * * ?
//	month    ? ? ? * *
//	year     ? ? ? ? *
//
// [Classify] validates an expression and reports its category.
// [ToFields] and [FromUIState] map between an expression and the
// per-field values shown by the editor, using the static
// [Category.DisplayPlan] table. For every valid expression e with
// category c, FromUIState(c, ToFields(c, e)) reproduces e byte for byte.
//
// Next-run computation is deliberately absent: the editor only builds
// strings, it never schedules anything.
package cron
