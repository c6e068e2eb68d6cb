// Package hcl provides the HCL implementation of config.Loader. It parses
// defaults files such as
//
//	tail {
//	  lines = 20
//	  quiet = true
//	}
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
// and translates them into the format-agnostic config.Defaults.
package hcl
