// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
mustangctl is a command-line utility for talking to a Fender Mustang
series amplifier without the vendor's configuration application.

	Usage: mustangctl [FLAGS] <command> [ARGS]

	Commands:
	  list               print the preset catalog and the active signal chain
	  load SLOT          load memory bank SLOT and print the resulting chain
	  amp ID [knobs...]  apply amp model ID (hex wire id) with up to 7 knob values
	  fx SLOT ID [knobs] apply effect model ID (hex wire id) to SLOT
	  tuner              enter tuner mode and print note updates until Ctrl-C

	Flags:
	      --config string   path to a device-profile YAML file (default "mustangctl.yaml")
	      --verbose         enable debug logging
*/
package main
