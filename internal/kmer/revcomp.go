// internal/kmer/revcomp.go
package kmer

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	pairs := []string{"AT", "CG", "YR"}
	for _, p := range pairs {
		a, b := p[0], p[1]
		complement[a], complement[b] = b, a
		la, lb := a|0x20, b|0x20
		complement[la], complement[lb] = lb, la
	}
	// Other IUPAC codes (N, S, W, K, M, ...) pass through unchanged.
}

// RevComp returns the reverse complement of seq. Case is preserved and bytes
// without a defined complement are carried through unchanged.
func RevComp(seq []byte) []byte {
	return AppendRevComp(make([]byte, 0, len(seq)), seq)
}

// AppendRevComp appends the reverse complement of seq to dst.
func AppendRevComp(dst, seq []byte) []byte {
	for i := len(seq) - 1; i >= 0; i-- {
		dst = append(dst, complement[seq[i]])
	}
	return dst
}
