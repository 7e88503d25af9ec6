package main

import (
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printSummary reports totals with locale-aware digit grouping.
func printSummary(w io.Writer, sum *totals, wall time.Duration) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "%d frames, %d triangles (%d culled), %d fragments\n",
		sum.frames, sum.triangles, sum.culled, sum.fragments)
	if sum.frames > 0 {
		avg := sum.draw / time.Duration(sum.frames)
		fps := 0.0
		if avg > 0 {
			fps = float64(time.Second) / float64(avg)
		}
		p.Fprintf(w, "avg draw %v (%.1f fps), wall %v\n",
			avg.Round(time.Microsecond), fps, wall.Round(time.Millisecond))
	}
}
