package encode

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

// BytesPerLine is how many hex literals go on one line of the array body.
const BytesPerLine = 16

// blockData holds what the block template needs.
type blockData struct {
	Identifier string
	Lines      []string
	Len        int
	MIME       string
}

var blockTemplate = template.Must(template.New("block").Parse(`const uint8_t {{.Identifier}}_gz[] PROGMEM = {
{{range .Lines}}  {{.}},
{{end}}};

const unsigned int {{.Identifier}}_gz_len = {{.Len}};
const char * {{.Identifier}}_gz_mime = "{{.MIME}}";

`))

// RenderBlock renders the three declarations for a.
func RenderBlock(a *CompressedAsset) (string, error) {
	data := &blockData{
		Identifier: a.Identifier,
		Lines:      HexLines(a.Data),
		Len:        a.Len(),
		MIME:       a.MIME,
	}

	var sb strings.Builder
	if err := blockTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", a.ArrayName(), err)
	}

	return sb.String(), nil
}

// HexLines formats data as "0x1f, 0x8b, ..." lines of BytesPerLine literals.
// Lines carry no indentation or trailing comma.
func HexLines(data []byte) []string {
	lines := make([]string, 0, (len(data)+BytesPerLine-1)/BytesPerLine)

	for start := 0; start < len(data); start += BytesPerLine {
		end := min(start+BytesPerLine, len(data))

		var sb strings.Builder
		for i, b := range data[start:end] {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(hexLiteral(b))
		}

		lines = append(lines, sb.String())
	}

	return lines
}

func hexLiteral(b byte) string {
	s := strconv.FormatUint(uint64(b), 16)
	if len(s) == 1 {
		return "0x0" + s
	}

	return "0x" + s
}
