package catalog

// Well-known model identifiers.
const (
	XTTSv2Model  = "tts_models/multilingual/multi-dataset/xtts_v2"
	XTTSv11Model = "tts_models/multilingual/multi-dataset/xtts_v1.1"
	YourTTSModel = "tts_models/multilingual/multi-dataset/your_tts"
	FreeVCModel  = "voice_conversion_models/multilingual/vctk/freevc24"
	DefaultLang  = "en-us"
)

// XTTSLanguages are the languages accepted by the XTTS cross-lingual models.
var XTTSLanguages = []string{
	"ar", "zh", "cs", "nl", "en", "fr", "de", "hi",
	"hu", "it", "ja", "ko", "pl", "pt", "ru", "es", "tr",
}

// coquiTable is the base model table. Per language, models are in priority
// order.
var coquiTable = map[string][]string{
	"bg": {"tts_models/bg/cv/vits"},
	"cs": {"tts_models/cs/cv/vits", XTTSv2Model, XTTSv11Model},
	"da": {"tts_models/da/cv/vits"},
	"et": {"tts_models/et/cv/vits"},
	"ga": {"tts_models/ga/cv/vits"},
	"en": {
		"tts_models/en/vctk/vits",
		"tts_models/en/ljspeech/vits",
		"tts_models/en/ljspeech/vits--neon",
		"tts_models/en/ljspeech/glow-tts",
		XTTSv2Model,
		XTTSv11Model,
		YourTTSModel,
		"tts_models/en/ek1/tacotron2",
		"tts_models/en/ljspeech/tacotron2-DDC",
		"tts_models/en/ljspeech/tacotron2-DDC_ph",
		"tts_models/en/ljspeech/tacotron2-DCA",
		"tts_models/en/sam/tacotron-DDC",
		"tts_models/en/blizzard2013/capacitron-t2-c50",
		"tts_models/en/blizzard2013/capacitron-t2-c150_v2",
		"tts_models/en/ljspeech/speedy-speech",
		"tts_models/en/ljspeech/neural_hmm",
		"tts_models/en/ljspeech/overflow",
		"tts_models/en/ljspeech/fast_pitch",
		"tts_models/en/vctk/fast_pitch",
	},
	"es": {"tts_models/es/css10/vits", XTTSv2Model, XTTSv11Model, "tts_models/es/mai/tacotron2-DDC"},
	"fr": {"tts_models/fr/css10/vits", XTTSv2Model, XTTSv11Model, YourTTSModel, "tts_models/fr/mai/tacotron2-DDC"},
	"uk": {"tts_models/uk/mai/vits", "tts_models/uk/mai/glow-tts"},
	"nl": {"tts_models/nl/css10/vits", XTTSv2Model, XTTSv11Model, "tts_models/nl/mai/tacotron2-DDC"},
	"de": {
		"tts_models/de/thorsten/vits",
		"tts_models/de/thorsten/vits--neon",
		XTTSv2Model,
		XTTSv11Model,
		"tts_models/de/thorsten/tacotron2-DCA",
		"tts_models/de/thorsten/tacotron2-DDC",
	},
	"it": {
		"tts_models/it/mai_male/vits",
		"tts_models/it/mai_female/vits",
		"tts_models/it/mai_male/glow-tts",
		"tts_models/it/mai_female/glow-tts",
		XTTSv2Model,
		XTTSv11Model,
	},
	"el":         {"tts_models/el/cv/vits"},
	"fi":         {"tts_models/fi/css10/vits"},
	"hr":         {"tts_models/hr/cv/vits"},
	"lt":         {"tts_models/lt/cv/vits"},
	"lv":         {"tts_models/lv/cv/vits"},
	"mt":         {"tts_models/mt/cv/vits"},
	"pl":         {"tts_models/pl/mai_female/vits", XTTSv2Model, XTTSv11Model},
	"pt":         {"tts_models/pt/cv/vits"},
	"pt-br":      {XTTSv2Model, XTTSv11Model, YourTTSModel},
	"ro":         {"tts_models/ro/cv/vits"},
	"sk":         {"tts_models/sk/cv/vits"},
	"sl":         {"tts_models/sl/cv/vits"},
	"sv":         {"tts_models/sv/cv/vits"},
	"ca":         {"tts_models/ca/custom/vits"},
	"bn":         {"tts_models/bn/custom/vits-male", "tts_models/bn/custom/vits-female"},
	"hu":         {"tts_models/hu/css10/vits", XTTSv2Model},
	"tr":         {"tts_models/tr/common-voice/glow-tts", XTTSv2Model, XTTSv11Model},
	"fa":         {"tts_models/fa/custom/glow-tts"},
	"be":         {"tts_models/be/common-voice/glow-tts"},
	"zh":         {XTTSv2Model, XTTSv11Model, "tts_models/zh-CN/baker/tacotron2-DDC-GST"},
	"ja":         {"tts_models/ja/kokoro/tacotron2-DDC", XTTSv2Model, XTTSv11Model},
	"ewe":        {"tts_models/ewe/openbible/vits"},
	"hau":        {"tts_models/hau/openbible/vits"},
	"lin":        {"tts_models/lin/openbible/vits"},
	"tw_akuapem": {"tts_models/tw_akuapem/openbible/vits"},
	"tw_asante":  {"tts_models/tw_asante/openbible/vits"},
	"yor":        {"tts_models/yor/openbible/vits"},
	"ko":         {XTTSv2Model},
	"hi":         {XTTSv2Model, XTTSv11Model},
	"ru":         {XTTSv2Model, XTTSv11Model},
	"ar":         {XTTSv2Model, XTTSv11Model},
}

// Coqui returns the base model catalog.
func Coqui() *Catalog {
	return New(coquiTable)
}

// XTTS returns a catalog restricted to the XTTS languages, every language
// mapping to model.
func XTTS(model string) *Catalog {
	table := make(map[string][]string, len(XTTSLanguages))
	for _, l := range XTTSLanguages {
		table[l] = []string{model}
	}
	return New(table)
}
