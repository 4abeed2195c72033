package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/wizenheimer/simlab"
)

// maxDocumentWidth truncates long documents in table rows.
const maxDocumentWidth = 72

// printer writes human-readable comparison tables. Colors follow the method
// catalog and are dropped automatically when w is not a terminal.
type printer struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	dim      lipgloss.Style
	score    lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:        w,
		renderer: r,
		dim:      r.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		score:    r.NewStyle().Bold(true),
	}
}

func (p *printer) heading(title, color string) string {
	return p.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(title)
}

func (p *printer) comparison(res *simlab.Comparison, top int) {
	fmt.Fprintf(p.w, "Query: %q (%d documents)\n", res.Query, len(res.Documents))

	for _, r := range res.Rankings {
		info := res.MethodInfo[r.Kind]
		title := info.Name
		if title == "" {
			title = string(r.Kind)
		}
		fmt.Fprintf(p.w, "\n%s  %s\n", p.heading(title, info.Color), p.dim.Render(info.Formula))

		if r.Err != nil {
			fmt.Fprintf(p.w, "  error: %v\n", r.Err)
			continue
		}
		p.rows(r.Top(top))
	}
}

func (p *printer) consensus(kind simlab.FusionKind, results []simlab.Result, top int) {
	if top > 0 && top < len(results) {
		results = results[:top]
	}
	fmt.Fprintf(p.w, "\n%s\n", p.heading("Consensus ("+string(kind)+")", "#e5e7eb"))
	p.rows(results)
}

func (p *printer) rows(results []simlab.Result) {
	for i, r := range results {
		fmt.Fprintf(p.w, "  %2d. %s %s %s\n",
			i+1,
			p.dim.Render(fmt.Sprintf("[%2d]", r.DocID)),
			p.score.Render(fmt.Sprintf("%.4f", r.Score)),
			truncate(r.Document, maxDocumentWidth))
	}
}

func (p *printer) methods(info map[simlab.MethodKind]simlab.MethodInfo) {
	for i, kind := range simlab.Kinds() {
		mi := info[kind]
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		fmt.Fprintf(p.w, "%s (%s)\n", p.heading(mi.Name, mi.Color), kind)
		fmt.Fprintf(p.w, "  %s\n", mi.Description)
		fmt.Fprintf(p.w, "  formula:  %s\n", mi.Formula)
		for _, pro := range mi.Pros {
			fmt.Fprintf(p.w, "  + %s\n", pro)
		}
		for _, con := range mi.Cons {
			fmt.Fprintf(p.w, "  - %s\n", con)
		}
		fmt.Fprintf(p.w, "  best for: %s\n", mi.BestFor)
	}
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
