// Package config loads contentkit settings from a YAML or TOML file.
//
// Everything is optional; Default gives the built-in values and Load
// overlays a file on them. Unknown keys are rejected so a typo does not
// silently fall back to a default.
//
//	cfg, err := config.Load("contentkit.yaml")
//	opts, err := cfg.Options()
//	res, err := content.Process(req, opts)
package config
