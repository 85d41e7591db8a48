package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show and set preferences",
	Long: `Prefs manages preferences stored in the local library. The only
preference today is dark-mode, which frontends read to pick a theme.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		defer lib.Close()

		fmt.Printf("dark-mode: %t\n", lib.DarkMode(context.Background()))
		return nil
	},
}

var prefsDarkModeCmd = &cobra.Command{
	Use:   "dark-mode [on|off]",
	Short: "Show or set the dark-mode preference",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		defer lib.Close()
		ctx := context.Background()

		if len(args) == 0 {
			fmt.Printf("dark-mode: %t\n", lib.DarkMode(ctx))
			return nil
		}

		var enabled bool
		switch args[0] {
		case "on", "true":
			enabled = true
		case "off", "false":
			enabled = false
		default:
			return fmt.Errorf("invalid value %q: use on or off", args[0])
		}

		if !lib.SetDarkMode(ctx, enabled) {
			return fmt.Errorf("saving preference failed")
		}
		fmt.Printf("dark-mode: %t\n", enabled)
		return nil
	},
}

func init() {
	prefsCmd.AddCommand(prefsDarkModeCmd)
	rootCmd.AddCommand(prefsCmd)
}
