package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"yolink-cli/internal/client"
	"yolink-cli/internal/config"
)

var (
	callDevice string
	callToken  string
)

// callCmd invokes an arbitrary hub method. Mostly useful for poking at
// device types the table does not break out yet.
var callCmd = &cobra.Command{
	Use:   "call <method>",
	Short: "Invoke a raw hub API method",
	Args:  cobra.ExactArgs(1),
	Example: `  yolink-cli call Home.getDeviceList
  yolink-cli call MotionSensor.getState --device d88b4c0123456789 --token abc123`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		api := client.New(client.ClientConfig{BaseURL: cfg.URL, Token: cfg.Token})

		req := client.Request{Method: args[0]}
		if callDevice != "" {
			req.TargetDevice = callDevice
			req.Token = callToken
			req.Params = map[string]any{}
		}

		env, raw, err := api.Call(req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := client.EnvelopeError(env); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			buf.Reset()
			buf.Write(raw)
		}
		fmt.Println(buf.String())
	},
}

func init() {
	rootCmd.AddCommand(callCmd)

	callCmd.Flags().StringVar(&callDevice, "device", "", "Target device ID for per-device methods")
	callCmd.Flags().StringVar(&callToken, "token", "", "Per-device token (from the device catalog)")
}
