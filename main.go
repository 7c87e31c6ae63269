// SPDX-License-Identifier: MPL-2.0

package main

import cmd "swapkit-cli/cmd/swapkit"

func main() {
	cmd.Execute()
}
