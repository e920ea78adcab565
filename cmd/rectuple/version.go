package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seyale/rectuple"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rectuple",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rectuple version %s\n", strings.TrimSpace(rectuple.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
