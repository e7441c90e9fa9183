package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var jsonOutput bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "yolink-cli",
	Short: "A CLI for the YoLink local hub API",
	Long: `Query the device catalog and live device state on a YoLink local hub
and display the result as a table.

Required environment variables:
  YOLINK_URL    Hub base URL (e.g. https://192.168.1.100:8003)
  YOLINK_TOKEN  API access token for the hub`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output full JSON responses appended after the table")
}
