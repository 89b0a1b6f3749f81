// Package config loads render settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/mathroadmap/config.toml by default and
// has two sections:
//
//	[layout]
//	algorithm = "spring"
//	seed = 42
//	iterations = 50
//	k = 2.0
//
//	[render]
//	width = 2400
//	height = 1800
//	title = "Complete Mathematics Learning Roadmap"
//	formats = ["png", "svg"]
//
// Values missing from the file keep their defaults. MATHROADMAP_* environment
// variables override the file, and the result is validated before use.
package config
