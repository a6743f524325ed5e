// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml, validated using struct tags and
// then overridden from RIDENAV_* environment variables.
package config
