package main

import "errors"

// Sentinel errors for CLI operations.
var (
	ErrInputNotFound    = errors.New("input CSV file not found")
	ErrReadInput        = errors.New("failed to read CSV file")
	ErrTemplateNotFound = errors.New("template file not found")
	ErrReadTemplate     = errors.New("failed to read template file")
	ErrInvalidTimeout   = errors.New("invalid timeout")

	// Config errors.
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)
