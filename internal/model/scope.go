package model

// Scope identifies the caller of a use case.
type Scope struct {
	UserID string
}

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
