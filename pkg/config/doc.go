// Package config loads the template context handed to the hooks.
//
// The context is a flat mapping of option names to string values. It is
// assembled from layered sources, later ones overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. an optional context file (TOML, YAML or JSON); a top-level
//     "cookiecutter" table is unwrapped when present
//  3. GENHOOKS_* environment variables
//  4. explicit key=value overrides from the command line
package config
