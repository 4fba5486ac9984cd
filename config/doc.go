// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// A missing file is not an error: the built-in defaults describe a working
// setup against the public Deutsche Bahn web API.
package config
