package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("empty_input", "no matching files found", "src/webUI")
	d.AddInfo("note", "just saying", "")
	assert.True(t, d.IsValid())

	d.AddError("identifier_collision", "2 files map to the same identifier", "a_b_js", "a.b.js", "a_b.js")
	d.AddError("empty_output_path", "output path is empty", "")

	require.True(t, d.HasErrors())
	assert.EqualError(t, d.Error(),
		"a_b_js: [identifier_collision] 2 files map to the same identifier (a.b.js, a_b.js); [empty_output_path] output path is empty")

	assert.Len(t, d.Warnings, 1)
	require.Len(t, d.Infos, 1)
	assert.Equal(t, SeverityInfo, d.Infos[0].Severity)
	assert.Equal(t, "[note] just saying", d.Infos[0].String())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
