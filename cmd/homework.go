package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"staff-directory/internal/homework"
)

func newHomeworkCmds() []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "ftoc <fahrenheit>",
			Short: "Convert Fahrenheit to Celsius",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				f, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("invalid temperature %q: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%g℉ = %.2f℃\n", f, homework.FahrenheitToCelsius(f))
				return nil
			},
		},
		{
			Use:   "fib <n>",
			Short: "Print the first n Fibonacci numbers",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid count %q: %w", args[0], err)
				}
				fibs, err := homework.Fibonacci(n)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), fibs)
				return nil
			},
		},
		{
			Use:   "stats <int>...",
			Short: "Print the median and mode of a list of integers",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				values := make([]int, len(args))
				for i, arg := range args {
					v, err := strconv.Atoi(arg)
					if err != nil {
						return fmt.Errorf("invalid value %q: %w", arg, err)
					}
					values[i] = v
				}
				st, err := homework.MedianMode(values)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "median: %g\nmode: %d\n", st.Median, st.Mode)
				return nil
			},
		},
		{
			Use:   "piglatin <word>...",
			Short: "Translate words to pig latin",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), homework.PigLatin(strings.Join(args, " ")))
				return nil
			},
		},
	}
}
