// Package config holds the settings a fixture server reads once at start.
//
// Values come from three layers, highest precedence first: command-line
// flags (which also cover the HOST, PORT and SECRET_VARIABLE environment
// variables), an optional TOML file, and the defaults of the selected
// fixture. The resulting Config is never mutated after the server starts.
package config

import (
	"net"
	"strconv"
)

// VersionLatest is the only config file version understood.
const VersionLatest = "v1"

// DefaultOpenAPIPath is served by the /.commoners route when unset.
const DefaultOpenAPIPath = "openapi.json"

// Config is the complete runtime configuration of one fixture process.
type Config struct {
	Version string `toml:"version"`

	// Fixture selects the route table to serve.
	Fixture string `toml:"fixture"`

	Host string `toml:"host" env_interpolation:"yes"`
	Port int    `toml:"port"`

	// Secret is echoed back verbatim by fixtures with a secret route.
	Secret string `toml:"secret" env_interpolation:"yes"`

	// OpenAPIPath is the file served by the OpenAPI route.
	OpenAPIPath string `toml:"openapi" env_interpolation:"yes"`

	Log Logging `toml:"log"`
}

// Logging controls where and how the process logs.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output" env_interpolation:"yes"`
}

// Defaults are the per-fixture host and port used when nothing else is set.
type Defaults struct {
	Host string
	Port int
}

// NewConfig returns a Config for fixture filled with the given defaults.
func NewConfig(fixture string, d Defaults) *Config {
	return &Config{
		Version:     VersionLatest,
		Fixture:     fixture,
		Host:        d.Host,
		Port:        d.Port,
		OpenAPIPath: DefaultOpenAPIPath,
		Log: Logging{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Address returns the host:port string to listen on. An empty host binds
// every interface.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// URL is the address a local client would use to reach the server.
func (c *Config) URL() string {
	host := c.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(c.Port))
}
