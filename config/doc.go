// Package config loads toolkit configuration from config.yml, .env files,
// and ARRKIT_-prefixed environment variables, in ascending precedence.
//
//	cfg, err := config.Load()
//	if err != nil { ... }
//	logger.Init(cfg.Logging)
//
// Every field has a working default, so Load succeeds with no files at all.
package config
