// Package config provides configuration loading, merging, and validation
// facilities for the appybrain client and its development backend.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Built-in defaults fill whatever is still unset. The entry point is
// [GetStructuredConfig].
package config
