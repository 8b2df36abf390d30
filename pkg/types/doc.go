// Package types defines the core types and interfaces used throughout chezconf.
// This includes the FS interface the store works against and the records
// stored in the chezmoi data section, Machine and Proxy.
package types
