// SPDX-License-Identifier: MPL-2.0

// Package guide holds the Markdown guides behind `swapkit explain`: short
// write-ups of the behavior-delegation mechanism and of each scenario,
// rendered for the terminal with glamour.
package guide
