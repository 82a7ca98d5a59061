// Package config handles loading and validating relay configuration.
//
// This package manages:
//   - Loading configuration from an optional YAML file
//   - Overriding with environment variables
//   - Validation of required fields
//   - Default value handling
//
// Security Considerations:
//   - The Govee API key and bearer tokens are secrets and should be supplied
//     by the hosting environment (GOVEE_API_KEY, TOKEN_*), never committed
//   - The config file should have restricted permissions (0600)
//
// Usage:
//
//	cfg, err := config.Load(os.Getenv("FRIENDSHIP_CONFIG"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.API.Port)
package config
