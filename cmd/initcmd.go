package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.yaml in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		const path = "config.yaml"
		if _, err := os.Stat(path); err == nil && !initForce {
			return eris.New("config.yaml already exists (use --force to overwrite)")
		}

		// cfg holds the loaded defaults at this point; the API key is
		// left empty on purpose and supplied via DEALSCOPE_ANTHROPIC_KEY.
		template := *cfg
		template.Anthropic.Key = ""

		data, err := yaml.Marshal(&template)
		if err != nil {
			return eris.Wrap(err, "init: marshal config")
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return eris.Wrap(err, "init: write config.yaml")
		}

		fmt.Println("wrote config.yaml")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config.yaml")
	rootCmd.AddCommand(initCmd)
}
