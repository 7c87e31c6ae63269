// SPDX-License-Identifier: MPL-2.0

// Package payment implements the payment scenario: a processor host that
// delegates authentication and transaction handling to whichever payment
// rail is currently bound, without ever branching on the concrete rail.
package payment
