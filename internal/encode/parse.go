package encode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ParsedBlock is a declaration block read back from generated text.
type ParsedBlock struct {
	Identifier  string
	Data        []byte
	DeclaredLen int
	MIME        string
}

var blockPattern = regexp.MustCompile(
	`(?s)const uint8_t ([^\n\[]+)_gz\[\] PROGMEM = \{\n(.*?)\};\n\n` +
		`const unsigned int ([^\n]+?)_gz_len = (\d+);\n` +
		`const char \* ([^\n]+?)_gz_mime = "([^"\n]*)";\n`,
)

// ParseBlocks extracts every declaration block from text, in order.
// Text outside the blocks (include guards, blank lines) is ignored.
func ParseBlocks(text string) ([]ParsedBlock, error) {
	var blocks []ParsedBlock

	for _, m := range blockPattern.FindAllStringSubmatch(text, -1) {
		id := m[1]
		if m[3] != id || m[5] != id {
			return nil, fmt.Errorf("block %s: mismatched declaration names %q, %q", id, m[3], m[5])
		}

		data, err := parseBody(m[2])
		if err != nil {
			return nil, fmt.Errorf("block %s: %w", id, err)
		}

		declared, err := strconv.Atoi(m[4])
		if err != nil {
			return nil, fmt.Errorf("block %s: length: %w", id, err)
		}

		blocks = append(blocks, ParsedBlock{
			Identifier:  id,
			Data:        data,
			DeclaredLen: declared,
			MIME:        m[6],
		})
	}

	return blocks, nil
}

func parseBody(body string) ([]byte, error) {
	var data []byte

	for line := range strings.Lines(body) {
		for tok := range strings.SplitSeq(line, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}

			hex, ok := strings.CutPrefix(tok, "0x")
			if !ok {
				return nil, fmt.Errorf("unexpected literal %q", tok)
			}

			b, err := strconv.ParseUint(hex, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("literal %q: %w", tok, err)
			}

			data = append(data, byte(b))
		}
	}

	return data, nil
}
