// Package config reads server settings from the environment and an optional
// .env file.
//
// Recognized variables:
//
//	DOTPRO_LOG_LEVEL      debug, info, warn or error (default info)
//	DOTPRO_REVISION       calibrated (default) or legacy
//	DOTPRO_ARCHIVE_DSN    postgres:// URL or SQLite file path; empty disables the archive
//	DOTPRO_ARCHIVE_DEBUG  true to log archive SQL
package config
