// Package cli provides the support code behind the nanobanana command:
//   - Configuration file loading (YAML)
//   - Report and listing output (JSON, YAML)
//   - Install and config paths
//   - A styled status line for stderr
//
// Configuration is read from ~/.config/nanobanana/config.yaml unless a
// path is given. The file is optional.
package cli
