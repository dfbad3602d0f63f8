// Package project locates the project root directory: the anchor against
// which ward finds its configuration file and interprets file-relative paths.
package project
