package transcript

import (
	"regexp"
	"strconv"
	"strings"
)

var srtTimeLine = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2}),(\d{3})\s*-->\s*(\d{2}:\d{2}:\d{2}),(\d{3})`)

// parseSRT reads SubRip cues. Cues without a numeric index line or a valid
// timing line are skipped.
func (p *Parser) parseSRT(content string) []Block {
	var blocks []Block

	for n, cue := range splitCues(content) {
		lines := strings.Split(strings.TrimSpace(cue), "\n")
		if len(lines) < 3 {
			continue
		}
		index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err != nil {
			p.logger.WithField("cue", n+1).Debug("Skipping cue with non-numeric index")
			continue
		}
		m := srtTimeLine.FindStringSubmatch(strings.TrimSpace(lines[1]))
		if m == nil {
			p.logger.WithField("cue", n+1).Debug("Skipping cue with malformed timing line")
			continue
		}

		text := strings.TrimSpace(strings.Join(lines[2:], "\n"))
		blocks = append(blocks, NewBlock(index, m[1]+","+m[2], m[3]+","+m[4], text))
	}

	return blocks
}

// splitCues splits on blank lines, tolerating whitespace-only separators.
func splitCues(content string) []string {
	var cues []string
	var cur []string
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				cues = append(cues, strings.Join(cur, "\n"))
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		cues = append(cues, strings.Join(cur, "\n"))
	}
	return cues
}
