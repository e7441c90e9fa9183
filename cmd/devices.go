package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"yolink-cli/internal/client"
	"yolink-cli/internal/config"
	"yolink-cli/internal/logging"
	"yolink-cli/internal/report"
	"yolink-cli/pkg/models"
)

// Variables to hold flag values
var (
	hideDeviceID  bool
	sortByContact bool
)

// Parent Command
var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Inspect hub devices",
	Long:  `List devices known to the hub together with their live state.`,
}

// List Command
var devicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all devices with their live state",
	Example: `  yolink-cli devices list
  yolink-cli devices list --hide-device-id
  yolink-cli devices list --sort-by-contact --json > devices.txt`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logging.NewLogger()
		defer log.Sync()

		cfg, err := config.Load()
		if err != nil {
			var missing *config.MissingEnvError
			if errors.As(err, &missing) {
				fmt.Fprintln(os.Stderr, "Error: Missing required environment variables:")
				for _, name := range missing.Vars {
					fmt.Fprintf(os.Stderr, "  - %s\n", name)
				}
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}

		api := client.New(client.ClientConfig{BaseURL: cfg.URL, Token: cfg.Token})

		fmt.Printf("Fetching device list from %s%s...\n", cfg.URL, client.APIPath)

		devices, err := api.GetDeviceList()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to fetch devices: %v\n", err)
			os.Exit(1)
		}

		fmt.Println()
		builder := report.Builder{Client: api, Log: log}
		renderDeviceList(os.Stdout, &builder, devices, sortByContact, hideDeviceID, jsonOutput)
	},
}

// renderDeviceList writes the finished report: the aligned device table, or
// the no-devices notice when the catalog is empty. An empty catalog is a
// normal outcome, not an error.
func renderDeviceList(w io.Writer, b *report.Builder, devices []models.Device, byContact, hideID, withJSON bool) {
	if len(devices) == 0 {
		fmt.Fprintln(w, "No devices found")
		return
	}

	rows, dumps := b.Build(devices)
	report.SortRows(rows, byContact)
	report.Render(w, rows, hideID)

	if withJSON && len(dumps) > 0 {
		report.RenderDumps(w, dumps)
	}
}

func init() {
	rootCmd.AddCommand(devicesCmd)
	devicesCmd.AddCommand(devicesListCmd)

	devicesListCmd.Flags().BoolVar(&hideDeviceID, "hide-device-id", false, "Hide the Device ID column for cleaner display")
	devicesListCmd.Flags().BoolVar(&sortByContact, "sort-by-contact", false, "Sort by Last radio contact (oldest first), then Type, then Name")
}
