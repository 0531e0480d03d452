package wyoming

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Event types used by the client.
const (
	typeDescribe   = "describe"
	typeInfo       = "info"
	typeSynthesize = "synthesize"
	typeAudioStart = "audio-start"
	typeAudioChunk = "audio-chunk"
	typeAudioStop  = "audio-stop"
	typeError      = "error"
)

// Framing limits. Audio chunks from Wyoming servers are a few KiB; the caps
// bound what a misbehaving server can make the client allocate.
const (
	maxHeaderBytes  = 64
	maxJSONBytes    = 1 << 20
	maxPayloadBytes = 16 << 20
)

type event struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data,omitempty"`
}

// info is the data of an "info" event, reduced to the tts section.
type info struct {
	TTS []ttsProgram `json:"tts"`
}

type ttsProgram struct {
	Name   string  `json:"name"`
	Voices []voice `json:"voices"`
}

type voice struct {
	Name      string    `json:"name"`
	Languages []string  `json:"languages"`
	Speakers  []speaker `json:"speakers"`
}

type speaker struct {
	Name string `json:"name"`
}

// decodeData re-decodes the generic event data into v.
func decodeData(evt *event, v any) error {
	raw, err := json.Marshal(evt.Data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// writeEvent sends one event. Header: <json_length> <payload_length>\n
func writeEvent(w io.Writer, evt event, payload []byte) error {
	jsonBytes, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshalling event: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(jsonBytes) + len(payload) + 24)
	fmt.Fprintf(&buf, "%d %d\n", len(jsonBytes), len(payload))
	buf.Write(jsonBytes)
	buf.WriteByte('\n')
	buf.Write(payload)

	_, err = w.Write(buf.Bytes())
	return err
}

// readEvent reads one event and its payload.
func readEvent(r io.Reader) (*event, []byte, error) {
	header := make([]byte, 0, maxHeaderBytes)
	one := make([]byte, 1)
	for {
		if _, err := io.ReadFull(r, one); err != nil {
			return nil, nil, fmt.Errorf("reading header: %w", err)
		}
		if one[0] == '\n' {
			break
		}
		if len(header) >= maxHeaderBytes {
			return nil, nil, fmt.Errorf("wyoming header exceeds %d bytes", maxHeaderBytes)
		}
		header = append(header, one[0])
	}

	jsonPart, payloadPart, ok := strings.Cut(string(header), " ")
	if !ok {
		return nil, nil, fmt.Errorf("invalid wyoming header: %q", string(header))
	}
	jsonLen, err := strconv.Atoi(strings.TrimSpace(jsonPart))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing json_length: %w", err)
	}
	payloadLen, err := strconv.Atoi(strings.TrimSpace(payloadPart))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing payload_length: %w", err)
	}

	if jsonLen < 0 || jsonLen > maxJSONBytes {
		return nil, nil, fmt.Errorf("wyoming json_length %d out of range", jsonLen)
	}
	if payloadLen < 0 || payloadLen > maxPayloadBytes {
		return nil, nil, fmt.Errorf("wyoming payload_length %d out of range", payloadLen)
	}

	body := make([]byte, jsonLen+1)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, nil, fmt.Errorf("reading json: %w", err)
	}

	var evt event
	if err := json.Unmarshal(body[:jsonLen], &evt); err != nil {
		return nil, nil, fmt.Errorf("unmarshalling event: %w", err)
	}

	var payload []byte
	if payloadLen > 0 {
		payload = make([]byte, payloadLen)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, nil, fmt.Errorf("reading payload: %w", err)
		}
	}
	return &evt, payload, nil
}

// pcmToWAV wraps raw little-endian PCM in a 44-byte RIFF header.
func pcmToWAV(pcm []byte, sampleRate, channels, bytesPerSample int) []byte {
	buf := &bytes.Buffer{}
	buf.Grow(44 + len(pcm))

	put := func(v any) { _ = binary.Write(buf, binary.LittleEndian, v) }

	buf.WriteString("RIFF")
	put(uint32(36 + len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	put(uint32(16))
	put(uint16(1)) // PCM
	put(uint16(channels))
	put(uint32(sampleRate))
	put(uint32(sampleRate * channels * bytesPerSample))
	put(uint16(channels * bytesPerSample))
	put(uint16(bytesPerSample * 8))

	buf.WriteString("data")
	put(uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}

func intField(data map[string]any, key string, def int) int {
	if v, ok := data[key].(float64); ok {
		return int(v)
	}
	return def
}
