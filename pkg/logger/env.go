package logger

import "strings"

// Environment names the deployment stage a logger is configured for.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Staging     Environment = "staging"
)

// ParseEnvironment maps an APP_ENV style value to an Environment.
// Short aliases are accepted; anything unknown is Development.
func ParseEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}
