// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"fmt"
	"io"
	"time"
)

/* ------------ single-line progress for one stream ------------ */

var spinner = []rune{'|', '/', '-', '\\'}

// progressWriter counts bytes passing through it and, when out is set,
// renders a throttled progress line.
type progressWriter struct {
	out      io.Writer
	total    int64 // -1 when unknown
	done     int64
	spinIdx  int
	lastTick time.Time
	interval time.Duration
	label    string
}

func newProgressWriter(out io.Writer, total int64, label string) *progressWriter {
	return &progressWriter{
		out:      out,
		total:    total,
		interval: 100 * time.Millisecond,
		label:    label,
	}
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.done += int64(len(b))
	p.render(false)
	return len(b), nil
}

func (p *progressWriter) render(force bool) {
	if p.out == nil {
		return
	}
	// update ~10 times per second at most
	if !force && time.Since(p.lastTick) < p.interval {
		return
	}
	p.lastTick = time.Now()

	if p.total > 0 {
		done := min(p.done, p.total)
		pct := float64(done) / float64(p.total) * 100
		fmt.Fprintf(p.out, "\rProgress: %6.2f%% (%s / %s)   ", pct, human(done), human(p.total))
		return
	}
	ch := spinner[p.spinIdx%len(spinner)]
	p.spinIdx++
	fmt.Fprintf(p.out, "\rProgress: [%c] %s %s   ", ch, human(p.done), p.label)
}

func (p *progressWriter) finish() {
	if p.out == nil {
		return
	}
	p.render(true)
	fmt.Fprintln(p.out)
}

func human(n int64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
	)
	switch {
	case n >= GB:
		return fmt.Sprintf("%.2f GB", float64(n)/float64(GB))
	case n >= MB:
		return fmt.Sprintf("%.2f MB", float64(n)/float64(MB))
	case n >= KB:
		return fmt.Sprintf("%.2f KB", float64(n)/float64(KB))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
