// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the cronedit
// binaries.
//
// Configuration is loaded from a single file specified by either the
// CRONEDIT_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There are no fallbacks, no ~/.config discovery,
// and no automatic file search. Command-line flags override whatever
// the file sets.
//
// Files ending in .json or .jsonc are read as JSON with comments and
// trailing commas; everything else is YAML. Both formats decode
// through the same yaml tags.
//
// Variable expansion is performed on url_set after loading:
// ${VAR} and ${VAR:-default} patterns are expanded from the process
// environment.
//
// Key exports:
//
//   - [Config] -- the editor's initial value, endpoint, effects, and
//     per-select layouts
//   - [Default] -- returns a Config with the editor's defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
package config
