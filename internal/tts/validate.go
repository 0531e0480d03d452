package tts

import (
	"fmt"

	"github.com/nadzzz/voicebox/internal/engine"
	"github.com/nadzzz/voicebox/internal/langtag"
)

// Validate checks voice and lang against caps and returns the values to
// forward to the model. An empty return value means the parameter must not
// be forwarded: voice is only set for multi-speaker models, language only for
// multi-lingual ones.
func Validate(caps engine.Capabilities, voice, lang string) (string, string, error) {
	var effVoice, effLang string

	if caps.MultiSpeaker {
		effVoice = voice
		if effVoice == "" && len(caps.Speakers) > 0 {
			effVoice = caps.Speakers[0]
		}
		if !caps.HasSpeaker(effVoice) {
			return "", "", fmt.Errorf("%w: speaker %q is not valid for selected model, valid: %v",
				ErrInvalidSpeaker, effVoice, caps.Speakers)
		}
	}

	if caps.MultiLingual {
		effLang = langtag.Macro(lang)
		if !caps.HasLanguage(effLang) {
			return "", "", fmt.Errorf("%w: lang %q is not valid for selected model, valid: %v",
				ErrInvalidLanguageForModel, effLang, caps.Languages)
		}
	}

	return effVoice, effLang, nil
}
