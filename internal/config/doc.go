// Package config loads the run configuration for the demo codec CLI.
//
// # Overview
//
// The config package handles loading, parsing, and validating the small
// YAML document that drives cmd/oba-codec: which operation fixture to
// decode or encode, and how to log the run. It supports:
//
//   - YAML configuration files, parsed with gopkg.in/yaml.v3
//   - Default values for every field
//   - Field-level validation errors
//
// # Loading Configuration
//
//	cfg, err := config.Load("run.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or use defaults:
//
//	cfg := config.Default()
//
// # Example Configuration
//
//	run:
//	  operation: "bindRequest"
//	  fixture: "testdata/bind.hex"
//
//	logging:
//	  level: "info"
//	  format: "json"
//	  output: "stderr"
package config
