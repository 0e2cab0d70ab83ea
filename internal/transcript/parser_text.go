package transcript

import (
	"fmt"
	"strconv"
	"strings"
)

// parseText makes one untimed block per non-blank line. The block index is
// the line number in the file.
func parseText(content string) []Block {
	var blocks []Block
	for i, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		blocks = append(blocks, NewBlock(i+1, "", "", line))
	}
	return blocks
}

// parseTSV reads start_ms, end_ms and text columns. The first line is a
// header.
func parseTSV(content string) ([]Block, error) {
	var blocks []Block
	for i, line := range strings.Split(strings.TrimSpace(content), "\n") {
		if i == 0 {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}
		start, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid start time %q: %w", i+1, parts[0], err)
		}
		end, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid end time %q: %w", i+1, parts[1], err)
		}
		blocks = append(blocks, NewBlock(i, MsToTimestamp(start), MsToTimestamp(end), parts[2]))
	}
	return blocks, nil
}
