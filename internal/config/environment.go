package config

import (
	"errors"
	"fmt"
	"strings"
)

// Environment names the runtime mode the process was started in.
type Environment string

// Recognized environments.
const (
	EnvironmentProduction  Environment = "Production"
	EnvironmentDevelopment Environment = "Development"
	EnvironmentTesting     Environment = "Testing"
)

// ErrUnknownEnvironment is returned for an environment name that is not recognized.
var ErrUnknownEnvironment = errors.New("unknown environment")

// ParseEnvironment maps a case-insensitive name to an Environment.
// An empty name means Production. "Test" is accepted as an alias of Testing.
func ParseEnvironment(name string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "production", "prod":
		return EnvironmentProduction, nil
	case "development", "dev":
		return EnvironmentDevelopment, nil
	case "testing", "test":
		return EnvironmentTesting, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownEnvironment, name)
	}
}

// UnmarshalText lets env and flag parsing accept any spelling ParseEnvironment does.
func (e *Environment) UnmarshalText(text []byte) error {
	parsed, err := ParseEnvironment(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// EagerInit reports whether the storage schema is initialized while the
// application is being composed rather than just before it starts serving.
func (e Environment) EagerInit() bool {
	return e == EnvironmentDevelopment || e == EnvironmentTesting
}

// IsTesting reports whether e is the Testing environment.
func (e Environment) IsTesting() bool {
	return e == EnvironmentTesting
}

func (e Environment) String() string {
	return string(e)
}
