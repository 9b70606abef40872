package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/YoDarkol23/Absolute-Service/pkg/config"
)

var (
	initOutput string
	initForce  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config file",
	Long: `Write a config file with the default settings, ready to edit.

The format follows the file extension: .yaml/.yml for YAML, anything
else JSON.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "cardelivery.yaml", "where to write the config file")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing file")
}

func runInit(_ *cobra.Command, _ []string) error {
	if !initForce {
		if _, err := os.Stat(initOutput); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", initOutput)
		}
	}
	if err := config.Save(initOutput, config.Default()); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", initOutput)
	return nil
}
