// ============================================================================
// mLaunch - Command Launcher
// ============================================================================
//
// Package:     launcher
// Description: Shortcut resolution, option interpretation and process launch
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

// Package launcher turns a raw launcher command line into a process launch.
//
// A line goes through four steps: the cmdline tokenizer splits it, the
// remainder is looked up in the shortcut table, Interpret maps the options to
// a Request, and an Engine starts the process. Resources owns the shortcut
// and translation tables and drives the pipeline in Run. Watcher reloads the
// resource files when they change on disk.
package launcher
