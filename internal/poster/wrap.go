package poster

import "unicode"

// Wrap greedily breaks text into lines of at most limit runes.
//
// Every whitespace rune counts as one space. Runs of spaces inside a line are
// kept; the ones a line would start or end with are dropped, except at the
// very beginning of text. A word longer than limit first fills what is left
// of the current line and then continues in limit-sized chunks.
func Wrap(text string, limit int) []string {
	if limit < 1 {
		limit = 1
	}
	chunks := splitChunks(text)
	var lines []string
	for len(chunks) > 0 {
		if len(lines) > 0 && isBlank(chunks[0]) {
			chunks = chunks[1:]
			continue
		}

		var (
			line [][]rune
			n    int
		)
		for len(chunks) > 0 && n+len(chunks[0]) <= limit {
			n += len(chunks[0])
			line = append(line, chunks[0])
			chunks = chunks[1:]
		}
		if len(chunks) > 0 && len(chunks[0]) > limit {
			if left := limit - n; left > 0 {
				line = append(line, chunks[0][:left])
				chunks[0] = chunks[0][left:]
			}
		}
		if len(line) > 0 && isBlank(line[len(line)-1]) {
			line = line[:len(line)-1]
		}
		if len(line) == 0 {
			continue
		}

		var out []rune
		for _, c := range line {
			out = append(out, c...)
		}
		lines = append(lines, string(out))
	}
	return lines
}

// splitChunks splits text into alternating runs of words and spaces.
func splitChunks(text string) [][]rune {
	var (
		chunks [][]rune
		cur    []rune
		blank  bool
	)
	for _, r := range text {
		space := unicode.IsSpace(r)
		if space {
			r = ' '
		}
		if len(cur) > 0 && space != blank {
			chunks = append(chunks, cur)
			cur = nil
		}
		cur = append(cur, r)
		blank = space
	}
	if len(cur) > 0 {
		chunks = append(chunks, cur)
	}
	return chunks
}

func isBlank(chunk []rune) bool {
	return len(chunk) > 0 && chunk[0] == ' '
}
