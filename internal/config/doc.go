// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config.yaml. It provides
// type-safe access to the settings the server, the stores, the auth layer
// and the planner need, keeping configuration details out of business logic.
package config
