package core

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOverlapAlignEndToEnd(t *testing.T) {
	srcXML := `<doc>` +
		`<s id="1"><time value="00:00:00,000"/><w>hello</w><time value="00:00:01,000"/></s>` +
		`<s id="2"><time value="00:00:01,000"/><w>world</w><time value="00:00:02,000"/></s>` +
		`</doc>`
	trgXML := `<doc>` +
		`<s id="a"><time value="00:00:00,000"/><w>hello</w><time value="00:00:01,000"/></s>` +
		`<s id="b"><time value="00:00:01,000"/><w>world</w><time value="00:00:02,000"/></s>` +
		`</doc>`

	srcPath := writeTempFile(t, "src.xml", []byte(srcXML))
	trgPath := writeTempFile(t, "trg.xml", []byte(trgXML))

	opts := DefaultOptions()
	out, err := RunOverlapAlign(srcPath, trgPath, FormatXML, opts, 2)
	require.NoError(t, err)
	assert.Contains(t, out, "cesAlign")
	assert.Contains(t, out, `id="SL1"`)
}

func TestRunOverlapAlignDelegatesToFallbackWhenScoreIsLow(t *testing.T) {
	srcXML := `<doc>` +
		`<s id="1"><time value="00:00:00,000"/><w>zzzzz</w><time value="00:00:01,000"/></s>` +
		`</doc>`
	trgXML := `<doc>` +
		`<s id="a"><time value="00:00:10,000"/><w>qqqqq</w><time value="00:00:11,000"/></s>` +
		`</doc>`

	srcPath := writeTempFile(t, "src.xml", []byte(srcXML))
	trgPath := writeTempFile(t, "trg.xml", []byte(trgXML))

	opts := DefaultOptions()
	opts.BestAlign = true
	opts.Fallback = "cat"

	out, err := RunOverlapAlign(srcPath, trgPath, FormatXML, opts, 2)
	require.NoError(t, err)

	srcBytes, err := os.ReadFile(srcPath)
	require.NoError(t, err)
	trgBytes, err := os.ReadFile(trgPath)
	require.NoError(t, err)
	assert.Equal(t, string(srcBytes)+string(trgBytes), out)
}

func TestRunProjectorEndToEnd(t *testing.T) {
	templateSRT := "1\n00:00:00,000 --> 00:00:01,000\none two three\n\n" +
		"2\n00:00:01,000 --> 00:00:02,000\nfour five six\n\n"
	templatePath := writeTempFile(t, "template.srt", []byte(templateSRT))

	translation := strings.NewReader("uno dos tres.\ncuatro cinco seis.\n")

	opts := DefaultOptions()
	out, err := RunProjector(templatePath, FormatSRT, translation, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "-->")
	assert.True(t, strings.Count(out, "\n\n") >= 1)
}
