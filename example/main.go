package main

import (
	"fmt"
	"os"

	"github.com/mikaelvesavuori/mikroconf"
)

const configFilePath = "config.json"

func main() {
	// Create a config file on disk for the demo, and clean it up after.
	fileContent := []byte(`{
  "server": {
    "host": "0.0.0.0"
  },
  "features": {
    "metrics": true
  }
}
`)
	if err := os.WriteFile(configFilePath, fileContent, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write demo config: %v\n", err)
		os.Exit(1)
	}
	defer os.Remove(configFilePath)

	options := []mikroconf.Option{
		{Path: "server.host", Flag: "--host", Default: "localhost", Description: "Host to bind"},
		{Path: "server.port", Flag: "--port", Default: 8080, Parser: mikroconf.IntParser(),
			Validator: mikroconf.Range(1, 65535), Description: "Port to listen on"},
		{Path: "log.level", Flag: "--log-level", Default: "info",
			Validator: mikroconf.OneOf("debug", "info", "warn", "error"), Description: "Log verbosity"},
		{Path: "verbose", Flag: "--verbose", IsFlag: true, Description: "Verbose output"},
	}

	rules := []mikroconf.Rule{
		{
			Path: "server.port",
			Check: func(value any, tree map[string]any) error {
				// Ports below 1024 need a host other than the wildcard.
				if port, ok := value.(int64); ok && port < 1024 {
					return fmt.Errorf("privileged port %d requires explicit host", port)
				}
				return nil
			},
			Message: "invalid server.port",
		},
	}

	cfg := mikroconf.NewBuilder().
		WithOptions(options...).
		WithRules(rules...).
		WithFile(configFilePath).
		WithConfig(map[string]any{"env": "demo"}).
		WithArgs(os.Args).
		Build()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration invalid: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(cfg.HelpText())

	host, _ := cfg.String("server.host")
	port, _ := cfg.Int64("server.port")
	fmt.Printf("listening on %s:%d (env=%v, verbose=%v)\n",
		host, port, cfg.GetValue("env", "unknown"), cfg.GetValue("verbose", false))

	var server struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	}
	if err := cfg.Scan("server", &server); err != nil {
		fmt.Fprintf(os.Stderr, "scan failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("scanned struct: %+v\n", server)

	fmt.Print(cfg.Debug())
}
