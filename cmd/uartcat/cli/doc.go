// Package cli implements uartcat, a host-side tool that reads lines from
// standard input and emits each one as a leveled log line through a
// uartlog facade, either to the terminal or to a serial device file.
//
// Flags may also be given in a YAML file passed with --config; keys use
// the flag names with hyphens or underscores. Command-line flags override
// file values.
//
//	tag: GPS
//	level: debug
//	device: /dev/ttyUSB0
//	color: never
package cli
