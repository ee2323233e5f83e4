package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/new-mentat/argen"
	"github.com/new-mentat/argen/display"
	"github.com/new-mentat/argen/spec"
)

var (
	flagOutput  string
	flagFormat  string
	flagVersion bool
)

var rootCmd = &cobra.Command{
	Use:   "argen <specfile>",
	Short: "Generate C argument parsing code from a declarative spec",
	Long: `argen reads a declarative description of a command-line interface
(TOML, JSON, or YAML) and emits C source implementing a getopt_long
parsing routine, a usage function, and a main skeleton.

Examples:
  argen cli.toml
  argen cli.toml -o cli_args.c
  argen --format json cli.spec`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagVersion {
			fmt.Println(display.BuildVersion("argen"))
			return nil
		}
		if len(args) != 1 {
			return cmd.Usage()
		}

		var s *argen.Spec
		var err error
		if flagFormat != "" {
			f, ferr := spec.FormatFromName(flagFormat)
			if ferr != nil {
				return ferr
			}
			s, err = spec.LoadFormat(args[0], f)
		} else {
			s, err = spec.Load(args[0])
		}
		if err != nil {
			return err
		}

		if flagOutput == "" || flagOutput == "-" {
			return argen.GenerateTo(os.Stdout, s)
		}
		src, err := argen.Generate(s)
		if err != nil {
			return err
		}
		return os.WriteFile(flagOutput, []byte(src), 0o644)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write generated C to this file (default stdout)")
	rootCmd.Flags().StringVar(&flagFormat, "format", "", "spec format: toml, json, or yaml (default by file extension)")
	rootCmd.Flags().BoolVar(&flagVersion, "version", false, "print version and exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "argen: %v\n", err)
		os.Exit(1)
	}
}
