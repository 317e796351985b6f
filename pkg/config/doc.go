// Package config provides configuration loading, validation, and
// defaults for Courier.
//
// # Loading
//
// Configuration is read from a YAML file, filled in with defaults, and
// validated:
//
//	cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// When no file is supplied the service runs entirely on defaults, which
// are sufficient for the common single-binary deployment.
//
// # Environment Overrides
//
// Environment variables always win over file values. Service-specific
// overrides follow the COURIER_SECTION_FIELD convention:
//
//	COURIER_SERVER_LISTEN_ADDRESS=0.0.0.0:9000
//	COURIER_TELEGRAM_TIMEOUT=10s
//	COURIER_LOGGING_LEVEL=debug
//
// Three conventional deployment variables are also honored: PORT
// (overrides only the listen port, default 8000), DATABASE_URL, and
// DATABASE_NAME.
//
// # Hot Reload
//
// FileWatcher observes the configuration file (via its directory, so
// atomic-rename saves are caught) and invokes a reload callback after
// debouncing. The server uses this to adjust the log level at runtime.
package config
