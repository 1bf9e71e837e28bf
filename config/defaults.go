// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the viewer configuration.

package config

func applyDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("view", Section{
		"filler":           "~",
		"clear_stale_rows": false,
	})
	cfg.RegisterDefaults("log", Section{
		"file":       "",
		"panic_file": "",
	})
}
