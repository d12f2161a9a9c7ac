package emit

import (
	"bytes"
	"fmt"

	"asset-packer/internal/encode"
)

// Header boilerplate expected by the firmware build.
const (
	GuardToken = "WWW_H"
	Include    = "<pgmspace.h>"
)

// Render builds the complete header for assets, in the given order.
func Render(assets []*encode.CompressedAsset) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "#ifndef %s\n#define %s\n\n#include %s\n\n", GuardToken, GuardToken, Include)

	for _, a := range assets {
		block, err := encode.RenderBlock(a)
		if err != nil {
			return nil, err
		}

		buf.WriteString(block)
	}

	fmt.Fprintf(&buf, "\n#endif // %s\n", GuardToken)

	return buf.Bytes(), nil
}
