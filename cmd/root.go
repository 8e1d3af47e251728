package cmd

import (
	"fmt"
	"os"

	"github.com/AminahAkhtar/tinydb-withdp/cmd/doc"
	"github.com/AminahAkhtar/tinydb-withdp/cmd/util"
	"github.com/spf13/cobra"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "tinydb",
		Short: "document database with pluggable storage middlewares",
		Long: fmt.Sprintf(`tinydb (v%s)

A small document database written in Go whose storage layer is assembled
from composable middlewares: write-buffering, operation logging and
operation metrics over pluggable storage backends.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of tinydb",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tinydb v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(doc.DocumentCommands)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "storage"
	RootCmd.PersistentFlags().String(key, "json", util.WrapString("storage engine to use (json, memory)"))
	key = "path"
	RootCmd.PersistentFlags().String(key, "db.json", util.WrapString("path of the database file (ignored by the memory engine)"))
	key = "serializer"
	RootCmd.PersistentFlags().String(key, "json", util.WrapString("serializer to use for the database file (json, gob)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
