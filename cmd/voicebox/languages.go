package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLanguagesCommand(configFile *string) *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:     "languages",
		Aliases: []string{"langs"},
		Short:   "List the languages a backend advertises",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configFile)
			if err != nil {
				return err
			}
			dispatcher, _ := newDispatcher(cfg)

			res, err := dispatcher.Languages(cmd.Context(), backend)
			if err != nil {
				return err
			}
			for _, l := range res.Languages {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&backend, "backend", "b", "", "backend name (defaults to tts.backend)")
	return cmd
}
