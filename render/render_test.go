// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/JulianGCalderon-FIUBA/contador-buscaminas/board"
	"github.com/JulianGCalderon-FIUBA/contador-buscaminas/render"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *board.Board {
	t.Helper()
	b, err := board.Parse(raw)
	require.NoError(t, err)
	return b
}

func TestWrite_Styles(t *testing.T) {
	b := mustParse(t, "*.\n..\n")
	b.Annotate()

	cases := []struct {
		style render.Style
		want  string
	}{
		{render.Plain, "*1\n11\n"},
		{render.Spaced, " *  1 \n 1  1 \n"},
		{render.Coordinates, "   0 1\n0: * 1\n1: 1 1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.style.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, render.Write(&buf, b, tc.style))
			require.Equal(t, tc.want, buf.String())
		})
	}
}

// TestWrite_CoordinatesWideBoard checks label alignment past nine rows and columns.
func TestWrite_CoordinatesWideBoard(t *testing.T) {
	raw := ""
	for y := 0; y < 11; y++ {
		raw += "...........\n"
	}
	b := mustParse(t, raw)

	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, b, render.Coordinates))
	lines := bytes.Split(bytes.TrimSuffix(buf.Bytes(), []byte("\n")), []byte("\n"))
	require.Len(t, lines, 12)
	require.Equal(t, "    0 1 2 3 4 5 6 7 8 9 0", string(lines[0]))
	require.Equal(t, " 0: . . . . . . . . . . .", string(lines[1]))
	require.Equal(t, "10: . . . . . . . . . . .", string(lines[11]))
}

func TestWrite_UnknownStyle(t *testing.T) {
	var buf bytes.Buffer
	err := render.Write(&buf, mustParse(t, "*\n"), render.Style(42))
	require.ErrorIs(t, err, render.ErrUnknownStyle)
	require.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWrite_WriterError(t *testing.T) {
	err := render.Write(failingWriter{}, mustParse(t, "*\n"), render.Plain)
	require.EqualError(t, err, "closed")
}

func TestParseStyle(t *testing.T) {
	for _, s := range []render.Style{render.Plain, render.Spaced, render.Coordinates} {
		got, err := render.ParseStyle(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}

	got, err := render.ParseStyle("  Spaced ")
	require.NoError(t, err)
	require.Equal(t, render.Spaced, got)

	_, err = render.ParseStyle("fancy")
	require.ErrorIs(t, err, render.ErrUnknownStyle)
	require.Equal(t, "Style(7)", render.Style(7).String())
}
