// SPDX-License-Identifier: MPL-2.0

// Package config loads swapkit configuration: defaults, overlaid by an
// optional CUE config file validated against an embedded schema and merged
// through Viper into a typed Config.
package config
