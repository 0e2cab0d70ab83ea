package transcript

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseJSON recognises, in order: token/timestamp output, Whisper segments,
// a single text object, a list of block objects, and an object wrapping such
// a list under "transcript" or "blocks".
func (p *Parser) parseJSON(data []byte) ([]Block, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	var blocks []Block
	switch v := root.(type) {
	case map[string]any:
		var err error
		blocks, err = p.parseJSONObject(v)
		if err != nil {
			return nil, err
		}
	case []any:
		blocks = blocksFromList(v)
	}

	if len(blocks) == 0 {
		return nil, ErrNoTranscriptData
	}
	return blocks, nil
}

func (p *Parser) parseJSONObject(obj map[string]any) ([]Block, error) {
	_, hasTokens := obj["tokens"]
	_, hasTimestamps := obj["timestamps"]
	if hasTokens && hasTimestamps {
		tokens, err := stringList(obj["tokens"])
		if err != nil {
			return nil, fmt.Errorf("tokens: %w", err)
		}
		times, err := floatList(obj["timestamps"])
		if err != nil {
			return nil, fmt.Errorf("timestamps: %w", err)
		}
		return p.blocksFromTokens(tokens, times), nil
	}

	if raw, ok := obj["segments"]; ok {
		segs, _ := raw.([]any)
		var blocks []Block
		for i, item := range segs {
			seg, ok := item.(map[string]any)
			if !ok {
				continue
			}
			blocks = append(blocks, NewBlock(
				i+1,
				SecondsToTimestamp(getFloatField(seg, "start")),
				SecondsToTimestamp(getFloatField(seg, "end")),
				strings.TrimSpace(getStringField(seg, "text")),
			))
		}
		return blocks, nil
	}

	if _, ok := obj["text"]; ok {
		return []Block{NewBlock(1, "", "", strings.TrimSpace(getStringField(obj, "text")))}, nil
	}

	list, ok := obj["transcript"]
	if !ok {
		list = obj["blocks"]
	}
	items, _ := list.([]any)
	return blocksFromList(items), nil
}

func (p *Parser) blocksFromTokens(tokens []string, times []float64) []Block {
	switch p.opts.JSONMode {
	case JSONTokens:
		var blocks []Block
		for i := 0; i < len(tokens) && i < len(times); i++ {
			blocks = append(blocks, NewBlock(i+1, SecondsToTimestamp(times[i]), "", tokens[i]))
		}
		return blocks
	case JSONAutoSegment:
		segments := AutoSegment(tokens, times, p.opts.GapFactor)
		blocks := make([]Block, 0, len(segments))
		for i, s := range segments {
			blocks = append(blocks, NewBlock(i+1, s.StartTime, s.EndTime, s.Text))
		}
		p.logger.WithField("segments", len(segments)).Debug("Auto-segmented tokens")
		return blocks
	default:
		return []Block{NewBlock(1, "", "", strings.Join(tokens, ""))}
	}
}

func blocksFromList(items []any) []Block {
	var blocks []Block
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		blocks = append(blocks, NewBlock(
			i+1,
			getStringField(m, "start_time"),
			getStringField(m, "end_time"),
			getStringField(m, "text"),
		))
	}
	return blocks
}

func getStringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getFloatField(m map[string]any, key string) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return 0
}

func stringList(v any) ([]string, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list, got %T", v)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("item %d: expected a string, got %T", i, item)
		}
		out = append(out, s)
	}
	return out, nil
}

func floatList(v any) ([]float64, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list, got %T", v)
	}
	out := make([]float64, 0, len(items))
	for i, item := range items {
		f, ok := item.(float64)
		if !ok {
			return nil, fmt.Errorf("item %d: expected a number, got %T", i, item)
		}
		out = append(out, f)
	}
	return out, nil
}
