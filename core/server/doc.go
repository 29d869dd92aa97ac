// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this
// package defines the configuration structure for server settings such as the
// listen port and the API key protecting the report endpoints.
package server
