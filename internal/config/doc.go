// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (never overrides variables that are already set)
//  2. Environment variables
//  3. Command-line flags (server only)
//  4. JSON config file
//
// Fields left empty by every source receive defaults.
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for catalogctl.
package config
