package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagAliases maps alternate long flag names to the canonical ones.
var flagAliases = map[string]string{
	"desc":  "description",
	"state": "status",
	"cols":  "width",
}

// addFlagAliases lets cmds accept the alternate names in flagAliases.
// Aliases that name a flag a command does not define stay unknown.
func addFlagAliases(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		flags := cmd.Flags()
		normalize := flags.GetNormalizeFunc()
		flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
			if canonical, ok := flagAliases[name]; ok {
				name = canonical
			}
			return normalize(f, name)
		})
	}
}
