// SPDX-License-Identifier: MPL-2.0

// Package demo orchestrates the demonstration scenarios. It wires hosts and
// variants together, drives bind/invoke sequences, and returns structured
// step reports. It never prints; rendering belongs to the CLI layer.
package demo
