package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nadzzz/voicebox/internal/message"
	"github.com/nadzzz/voicebox/internal/tts"
)

type synthOptions struct {
	lang      string
	voice     string
	reference string
	model     string
	backend   string
	out       string
}

func newSynthCommand(configFile *string) *cobra.Command {
	var o synthOptions

	cmd := &cobra.Command{
		Use:   "synth [text]",
		Short: "Render text to a wav file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configFile)
			if err != nil {
				return err
			}
			dispatcher, _ := newDispatcher(cfg)
			text := strings.Join(args, " ")

			// An explicit output path bypasses the output directory.
			if o.out != "" {
				s, err := dispatcher.Backend(cmd.Context(), o.backend)
				if err != nil {
					return err
				}
				res, err := s.Synthesize(cmd.Context(), tts.Request{
					Text:             text,
					OutputPath:       o.out,
					Language:         o.lang,
					Voice:            o.voice,
					ReferenceSpeaker: o.reference,
					ModelOverride:    o.model,
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), res.Path)
				return nil
			}

			res, err := dispatcher.Synthesize(cmd.Context(), &message.SynthesisRequest{
				Text:             text,
				Language:         o.lang,
				Voice:            o.voice,
				ReferenceSpeaker: o.reference,
				Model:            o.model,
				Backend:          o.backend,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&o.lang, "lang", "l", "", "language tag (defaults to tts.lang)")
	cmd.Flags().StringVar(&o.voice, "voice", "", "speaker of a multi-speaker model")
	cmd.Flags().StringVar(&o.reference, "reference", "", "wav file whose voice is cloned")
	cmd.Flags().StringVarP(&o.model, "model", "m", "", "model identifier, bypassing the catalog")
	cmd.Flags().StringVarP(&o.backend, "backend", "b", "", "backend name (defaults to tts.backend)")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "output wav path (defaults to a file in tts.output_dir)")

	return cmd
}
