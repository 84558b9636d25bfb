// Package config provides configuration loading, merging, and validation
// facilities for the user-list client and the users server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables (optionally pre-loaded from a .env file)
//  4. Command-line flags
//
// The main entry points are [GetClientConfig] and [GetServerConfig], which
// build a role-specific view on top of the merged [StructuredConfig].
package config
