// Package cli parses command-line flags into packer options, and maps
// failures onto process exit codes.
package cli
