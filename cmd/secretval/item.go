package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/loambank/secretval"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var getCmd = &cobra.Command{
	Use:   "get <service>",
	Short: "Print the value stored for a service",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		defer env.cleanup()

		val := secretval.NewString(env.backend, env.service(args[0]), "", env.opts...)
		fmt.Println(val.Get())
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <service> [value]",
	Short: "Store a value for a service",
	Long:  "Store a value. If value is omitted, reads from stdin (useful for piping).",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		defer env.cleanup()

		var value string
		if len(args) == 2 {
			value = args[1]
		} else {
			value, err = readSecret()
			if err != nil {
				return err
			}
		}

		val := secretval.NewString(env.backend, env.service(args[0]), "", env.opts...)
		val.Set(value)
		fmt.Printf("Value for %q stored\n", val.Service())
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <service>",
	Short:   "Remove the value stored for a service",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		defer env.cleanup()

		val := secretval.NewString(env.backend, env.service(args[0]), "", env.opts...)
		val.Delete()
		fmt.Printf("Value for %q deleted\n", val.Service())
		return nil
	},
}

// readSecret prompts on a terminal without echoing, and otherwise reads
// the whole of stdin.
func readSecret() (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Print("Enter value: ")
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return "", fmt.Errorf("reading value: %w", err)
		}
		fmt.Println()
		return string(b), nil
	}

	b, err := os.ReadFile("/dev/stdin")
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\n"), nil
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(deleteCmd)
}
