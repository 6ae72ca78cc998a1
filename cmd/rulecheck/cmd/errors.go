package cmd

import "errors"

var (
	ErrRuleFailed       = errors.New("rule failed")
	ErrUnknownRule      = errors.New("unknown rule")
	ErrUnknownBackend   = errors.New("unknown uniqueness backend")
	ErrInvalidOutput    = errors.New("invalid output format")
	ErrBackendUnhealthy = errors.New("backend is unhealthy")
	ErrSeedFile         = errors.New("failed to load memory seed file")
)
