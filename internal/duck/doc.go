// SPDX-License-Identifier: MPL-2.0

// Package duck implements the duck scenario: a host whose flight and
// vocalization behaviors are delegated through binding slots to stateless
// variants, while its species identity stays fixed per specialization.
package duck
