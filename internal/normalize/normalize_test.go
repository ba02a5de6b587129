package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mininorm/internal/kmer"
	"mininorm/internal/table"
)

func TestMedian(t *testing.T) {
	cases := []struct {
		in   []uint32
		want float64
	}{
		{[]uint32{1, 2, 2, 3}, 2},
		{[]uint32{5}, 5},
		{[]uint32{3, 1, 2}, 2},
		{[]uint32{2, 1}, 1.5},
		{[]uint32{4, 1, 3, 10}, 3.5},
	}
	for _, c := range cases {
		got, ok := Median(append([]uint32(nil), c.in...))
		require.True(t, ok)
		assert.Equal(t, c.want, got, "Median(%v)", c.in)
	}

	m, ok := Median(nil)
	assert.False(t, ok)
	assert.Zero(t, m)
}

func TestParams_Validate(t *testing.T) {
	assert.NoError(t, Params{Window: 20, K: 20, Coverage: 20}.Validate())
	for _, p := range []Params{
		{Window: 0, K: 20, Coverage: 20},
		{Window: 20, K: -1, Coverage: 20},
		{Window: 20, K: 20, Coverage: 0},
	} {
		assert.ErrorIs(t, p.Validate(), ErrInvalidParams, "%+v", p)
	}
	_, err := New(Params{}, table.New())
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestParams_MinScorableLength(t *testing.T) {
	p := Params{Window: 2, K: 3, Coverage: 1}
	assert.Equal(t, 6, p.MinScorableLength())
	e := kmer.NewExtractor(p.K, p.Window)
	assert.Empty(t, e.Extract([]byte("ACGTA")))
	assert.NotEmpty(t, e.Extract([]byte("ACGTAC")))
}

func extract(seq string) kmer.Set {
	return kmer.NewExtractor(3, 2).Extract([]byte(seq))
}

// Two reads sharing exactly one minimizer: the second read's score must
// already include its own occurrence of the shared k-mer.
func TestScore_RecordsBeforeScoring(t *testing.T) {
	tb := table.New()
	n, err := New(Params{Window: 2, K: 3, Coverage: 1}, tb)
	require.NoError(t, err)

	r1 := extract("AAAAAA")   // {AAA}
	r2 := extract("AAAACCCC") // {AAA, AAC}
	shared := 0
	for m := range r2 {
		if _, ok := r1[m]; ok {
			shared++
		}
	}
	require.Equal(t, 1, shared)

	res := n.Score(6, r1)
	assert.Equal(t, Result{Length: 6, Minimizers: 1, Distinct: 1, New: 1, Median: 1, Keep: true}, res)

	res = n.Score(8, r2)
	// AAA=2 (read 1 + read 2), AAC=1 -> median 1.5 > 1
	assert.Equal(t, Result{Length: 8, Minimizers: 2, Distinct: 2, New: 1, Median: 1.5, Keep: false}, res)
	assert.EqualValues(t, 2, tb.Frequency("AAA"))
}

func TestScore_ThresholdIsInclusive(t *testing.T) {
	n, err := New(Params{Window: 2, K: 3, Coverage: 2}, table.New())
	require.NoError(t, err)
	s := extract("AAAAAA")
	assert.True(t, n.Score(6, s).Keep)  // 1
	assert.True(t, n.Score(6, s).Keep)  // 2 == c
	assert.False(t, n.Score(6, s).Keep) // 3
}

func TestScore_EmptySetIsKept(t *testing.T) {
	tb := table.New()
	n, err := New(Params{Window: 2, K: 3, Coverage: 1}, tb)
	require.NoError(t, err)
	n.Score(6, extract("AAAAAA"))

	res := n.Score(4, extract("ACGT"))
	assert.True(t, res.Keep)
	assert.True(t, res.Degenerate)
	assert.Zero(t, res.Median)
	assert.Equal(t, 0, res.Minimizers)
	assert.Equal(t, 0, res.New)
	assert.Equal(t, 1, res.Distinct)
}
