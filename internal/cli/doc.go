// Package cli builds the configsnap command tree. It parses and validates
// flags into an app.Config and maps failures to process exit codes.
package cli
