// Package config loads gateway configuration from PROPWISE_* environment
// variables with validated defaults.
package config
