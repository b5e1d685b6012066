package main

import (
	"fmt"
	"os"

	"github.com/jsvensson/ledgrad"
	"github.com/jsvensson/ledgrad/colorspace"
	"github.com/jsvensson/ledgrad/internal/format"
	"github.com/jsvensson/ledgrad/internal/render"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	flagProgram   string
	flagOut       string
	flagFormat    string
	flagGradients []string
	flagVerbose   bool
	flagCheck     bool
	version       = "dev" // Injected at build time via ldflags
)

var log = commonlog.GetLogger("ledgrad")

var rootCmd = &cobra.Command{
	Use:     "ledgrad",
	Short:   "Generate RGBW gradient ramps for LED strips from an HCL program file",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbosity := 0
		if flagVerbose {
			verbosity = 2
		}
		commonlog.Configure(verbosity, nil)
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Sample every gradient and write output files",
	RunE:  runRender,
}

var convertCmd = &cobra.Command{
	Use:   "convert <hex color>",
	Short: "Print a color in every representation",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format .ledgrad files",
	Long:  "Format one or more .ledgrad files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	renderCmd.Flags().StringVar(&flagProgram, "program", "gradients.ledgrad", "path to gradient program file")
	renderCmd.Flags().StringVar(&flagOut, "out", "output", "output directory")
	renderCmd.Flags().StringVar(&flagFormat, "format", "carray", "output format (carray, csv, hex)")
	renderCmd.Flags().StringArrayVar(&flagGradients, "gradient", nil, "render only specific gradients (can be repeated)")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	prog, err := ledgrad.Load(flagProgram)
	if err != nil {
		return err
	}

	log.Infof("loaded %d gradients from %s", len(prog.Gradients), flagProgram)

	r := &render.Renderer{
		OutputDir: flagOut,
		Format:    flagFormat,
		Names:     flagGradients,
	}

	if err := r.Run(prog); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote gradient files to %s\n", flagOut)
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	c, err := colorspace.ParseHex(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, c)
	fmt.Fprintln(out, c.RGBW())
	fmt.Fprintln(out, c.XYZ())
	fmt.Fprintln(out, c.Luv())
	fmt.Fprintln(out, c.LCh())
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := format.Format(content)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
