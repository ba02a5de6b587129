// internal/appcore/progress.go
package appcore

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// progress is a read counter on stderr. A nil *progress is a no-op.
type progress struct {
	pbs *mpb.Progress
	bar *mpb.Bar
}

func newProgress(w io.Writer, enabled bool) *progress {
	if !enabled {
		return nil
	}
	const label = "processed reads: "
	pbs := mpb.New(mpb.WithWidth(40), mpb.WithOutput(w))
	bar := pbs.AddSpinner(0,
		mpb.PrependDecorators(
			decor.Name(label, decor.WC{W: len(label), C: decor.DindentRight}),
			decor.CurrentNoUnit("%d"),
		),
		mpb.AppendDecorators(
			decor.Elapsed(decor.ET_STYLE_GO),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	return &progress{pbs: pbs, bar: bar}
}

func (p *progress) increment() {
	if p == nil {
		return
	}
	p.bar.Increment()
}

func (p *progress) finish(ok bool) {
	if p == nil {
		return
	}
	if ok {
		p.bar.SetTotal(-1, true)
	} else {
		p.bar.Abort(false)
	}
	p.pbs.Wait()
}
