// pkg/api/stats_v1.go
package api

// ReadStatsV1 is the stable JSONL schema for per-read statistics.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReadStatsV1 struct {
	Index      int     `json:"index"` // 0-based position in the input stream
	ID         string  `json:"id"`
	Length     int     `json:"length"`
	Minimizers int     `json:"minimizers"`
	Cumulative int     `json:"cumulative_minimizers"`
	New        int     `json:"new_minimizers"`
	Median     float64 `json:"median"`
	Kept       bool    `json:"kept"`
	Degenerate bool    `json:"degenerate,omitempty"`
}
