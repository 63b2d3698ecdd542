// Package config handles loading and validating Gray Logic Input configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables (INPUTCTL_*)
//   - Validation of required fields and seed profiles
//   - Default value handling
//
// Configuration is loaded once at startup; there is no runtime overhead
// afterwards.
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Database.Path)
package config
