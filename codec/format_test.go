// SPDX-License-Identifier: MIT
package codec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphd/codec"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]codec.Format{"json": codec.JSON, "": codec.JSON, "YAML": codec.YAML, "yml": codec.YAML} {
		got, err := codec.ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := codec.ParseFormat("xml")
	require.ErrorIs(t, err, codec.ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	require.Equal(t, codec.YAML, codec.FormatFromPath("/tmp/graph.yaml"))
	require.Equal(t, codec.YAML, codec.FormatFromPath("g.YML"))
	require.Equal(t, codec.JSON, codec.FormatFromPath("g.json"))
	require.Equal(t, codec.JSON, codec.FormatFromPath("noext"))
}

func TestUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, codec.Encode(&buf, "toml", 1), codec.ErrUnknownFormat)
	var v int
	require.ErrorIs(t, codec.Decode(strings.NewReader("1"), "toml", &v), codec.ErrUnknownFormat)
}

func TestYAMLSyntaxErrorIsMalformed(t *testing.T) {
	var rec codec.GraphRecord[float64]
	err := codec.Unmarshal(codec.YAML, []byte("type: [list\n"), &rec)
	require.ErrorIs(t, err, codec.ErrMalformed)
}
