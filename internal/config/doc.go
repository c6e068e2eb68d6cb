// Package config defines the format-agnostic defaults model that a
// configuration file can supply to the command line, along with the Loader
// interface that concrete formats implement.
//
// Concrete implementations, such as the HCL one, live in separate packages.
package config
