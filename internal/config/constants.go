package config

import "time"

const (
	// ServiceName labels logs and telemetry.
	ServiceName = "character-customizer"

	defaultShutdownTimeout = 10 * time.Second
)
