package fastq

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `@r1 run=7 ch=3
ACGTACGTNN
+
IIIIIIIIII
@r2
acgtyr
+r2
!!!!!!
@r3 
GGGG
+
####
`

func decodeAll(t *testing.T, d *Decoder) []Record {
	t.Helper()
	var out []Record
	for {
		r, err := d.Next()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, r)
	}
}

func TestDecoder_Basic(t *testing.T) {
	recs := decodeAll(t, NewDecoder(strings.NewReader(sample)))
	require.Len(t, recs, 3)

	assert.Equal(t, "r1", recs[0].ID)
	assert.Equal(t, "run=7 ch=3", recs[0].Description)
	assert.Equal(t, "ACGTACGTNN", string(recs[0].Seq))
	assert.Equal(t, "IIIIIIIIII", string(recs[0].Qual))

	assert.Equal(t, "r2", recs[1].ID)
	assert.Empty(t, recs[1].Description)
	assert.Equal(t, "acgtyr", string(recs[1].Seq), "case is preserved")

	// trailing space on the header is trimmed away, so no description
	assert.Equal(t, "r3", recs[2].ID)
	assert.Empty(t, recs[2].Description)
}

func TestDecoder_TrimsWhitespaceAndCRLF(t *testing.T) {
	in := "@x desc\r\n  ACGT  \r\n+\r\nIIII\r\n"
	recs := decodeAll(t, NewDecoder(strings.NewReader(in)))
	require.Len(t, recs, 1)
	assert.Equal(t, "desc", recs[0].Description)
	assert.Equal(t, "ACGT", string(recs[0].Seq))
	assert.Equal(t, "IIII", string(recs[0].Qual))
}

func TestDecoder_NoTrailingNewline(t *testing.T) {
	recs := decodeAll(t, NewDecoder(strings.NewReader("@x\nAC\n+\nII")))
	require.Len(t, recs, 1)
	assert.Equal(t, "II", string(recs[0].Qual))
}

func TestDecoder_TrailingBlankLines(t *testing.T) {
	recs := decodeAll(t, NewDecoder(strings.NewReader("@x\nAC\n+\nII\n\n\n   \n")))
	assert.Len(t, recs, 1)
}

func TestDecoder_BlankLineBetweenRecords(t *testing.T) {
	d := NewDecoder(strings.NewReader("@a\nACGT\n+\nIIII\n\n@b\nAC\n+\nII\n"))
	r, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", r.ID)

	_, err = d.Next()
	var fe *FormatError
	require.True(t, errors.As(err, &fe), "want FormatError, got %v", err)
	assert.ErrorIs(t, err, ErrBadHeader)
	assert.Equal(t, 2, fe.Record)
	assert.Equal(t, 5, fe.Line)
}

func TestDecoder_Empty(t *testing.T) {
	_, err := NewDecoder(strings.NewReader("")).Next()
	assert.Equal(t, io.EOF, err)
}

func TestDecoder_BadHeader(t *testing.T) {
	in := "@ok\nAC\n+\nII\n>fasta\nAC\n"
	d := NewDecoder(strings.NewReader(in))
	_, err := d.Next()
	require.NoError(t, err)

	_, err = d.Next()
	var fe *FormatError
	require.True(t, errors.As(err, &fe), "want FormatError, got %v", err)
	assert.ErrorIs(t, err, ErrBadHeader)
	assert.Equal(t, 2, fe.Record)
	assert.Equal(t, 5, fe.Line)
	assert.Contains(t, err.Error(), "record 2")
}

func TestDecoder_EmptyID(t *testing.T) {
	_, err := NewDecoder(strings.NewReader("@ desc\nAC\n+\nII\n")).Next()
	assert.ErrorIs(t, err, ErrEmptyID)
}

func TestDecoder_Truncated(t *testing.T) {
	for _, in := range []string{
		"@x\n",
		"@x\nACGT\n",
		"@x\nACGT\n+\n",
	} {
		_, err := NewDecoder(strings.NewReader(in)).Next()
		var fe *FormatError
		require.True(t, errors.As(err, &fe), "input %q: got %v", in, err)
		assert.ErrorIs(t, err, ErrTruncated)
		assert.Equal(t, "x", fe.ID)
	}
}

func TestDecoder_LongLines(t *testing.T) {
	seq := bytes.Repeat([]byte("ACGT"), readerSize) // 4 MiB, several buffer fills
	qual := bytes.Repeat([]byte("I"), len(seq))
	in := "@long\n" + string(seq) + "\n+\n" + string(qual) + "\n@short\nA\n+\nI\n"
	recs := decodeAll(t, NewDecoder(strings.NewReader(in)))
	require.Len(t, recs, 2)
	assert.Equal(t, seq, recs[0].Seq)
	assert.Equal(t, qual, recs[0].Qual)
	assert.Equal(t, "short", recs[1].ID)
}

func TestDecoder_RecordsDoNotAlias(t *testing.T) {
	d := NewDecoder(strings.NewReader(sample))
	a, err := d.Next()
	require.NoError(t, err)
	_, err = d.Next()
	require.NoError(t, err)
	assert.Equal(t, "ACGTACGTNN", string(a.Seq))
}

func TestDecoder_RestartSeeker(t *testing.T) {
	d := NewDecoder(strings.NewReader(sample))
	first := decodeAll(t, d)
	assert.Equal(t, 3, d.Index())

	require.NoError(t, d.Restart())
	assert.Equal(t, 0, d.Index())
	second := decodeAll(t, d)
	assert.Equal(t, first, second)
}

func TestDecoder_RestartNotSeekable(t *testing.T) {
	d := NewDecoder(io.MultiReader(strings.NewReader(sample)))
	decodeAll(t, d)
	assert.ErrorIs(t, d.Restart(), ErrNotRestartable)
}

func TestRecord_FASTQRoundTrip(t *testing.T) {
	recs := decodeAll(t, NewDecoder(strings.NewReader(sample)))
	var out []byte
	for _, r := range recs {
		out = r.AppendFASTQ(out)
	}
	want := strings.Replace(sample, "+r2\n", "+\n", 1)
	want = strings.Replace(want, "@r3 \n", "@r3\n", 1)
	assert.Equal(t, want, string(out))
}

func TestRecord_FASTQExactForCleanInput(t *testing.T) {
	in := "@a x y\nACGT\n+\nIIII\n@b\nTT\n+\n##\n"
	var out []byte
	for _, r := range decodeAll(t, NewDecoder(strings.NewReader(in))) {
		out = r.AppendFASTQ(out)
	}
	assert.Equal(t, in, string(out))
}

func TestRecord_FASTAWrap(t *testing.T) {
	seq := strings.Repeat("A", 60) + strings.Repeat("C", 60) + "GG"
	r := Record{ID: "id", Description: "d", Seq: []byte(seq)}
	got := string(r.AppendFASTA(nil))
	want := ">id d\n" + strings.Repeat("A", 60) + "\n" + strings.Repeat("C", 60) + "\nGG\n"
	assert.Equal(t, want, got)

	exact := Record{ID: "e", Seq: []byte(strings.Repeat("T", 60))}
	assert.Equal(t, ">e\n"+strings.Repeat("T", 60)+"\n", string(exact.AppendFASTA(nil)))
}

func TestRecord_Header(t *testing.T) {
	assert.Equal(t, "a", Record{ID: "a"}.Header())
	assert.Equal(t, "a b c", Record{ID: "a", Description: "b c"}.Header())
}
