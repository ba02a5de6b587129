// internal/fastq/record.go
package fastq

// FASTALineWidth is the column at which AppendFASTA wraps sequence lines.
const FASTALineWidth = 60

// Record is one decoded FASTQ read. ID never carries the '@' marker and
// Description is empty when the header had no text after the identifier.
// The decoder allocates fresh slices per record; callers must not mutate them.
type Record struct {
	ID          string
	Description string
	Seq         []byte
	Qual        []byte
}

// Header returns the identifier plus description, joined by a single space.
func (r Record) Header() string {
	if r.Description == "" {
		return r.ID
	}
	return r.ID + " " + r.Description
}

// AppendFASTQ appends the four-line FASTQ block (with trailing newline) to dst.
func (r Record) AppendFASTQ(dst []byte) []byte {
	dst = append(dst, '@')
	dst = append(dst, r.ID...)
	if r.Description != "" {
		dst = append(dst, ' ')
		dst = append(dst, r.Description...)
	}
	dst = append(dst, '\n')
	dst = append(dst, r.Seq...)
	dst = append(dst, "\n+\n"...)
	dst = append(dst, r.Qual...)
	return append(dst, '\n')
}

// AppendFASTA appends a FASTA rendering of r, sequence wrapped at
// FASTALineWidth columns. Quality is dropped.
func (r Record) AppendFASTA(dst []byte) []byte {
	dst = append(dst, '>')
	dst = append(dst, r.ID...)
	if r.Description != "" {
		dst = append(dst, ' ')
		dst = append(dst, r.Description...)
	}
	dst = append(dst, '\n')
	for off := 0; off < len(r.Seq); off += FASTALineWidth {
		end := off + FASTALineWidth
		if end > len(r.Seq) {
			end = len(r.Seq)
		}
		dst = append(dst, r.Seq[off:end]...)
		dst = append(dst, '\n')
	}
	return dst
}
