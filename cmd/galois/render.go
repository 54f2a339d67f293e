package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/galois/config"
	"github.com/katalvlaran/galois/cyclotomic"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle   = lipgloss.NewStyle().Faint(true).Width(18)
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func render(w io.Writer, format string, ss []cyclotomic.Summary) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		var v any = ss
		if len(ss) == 1 {
			v = ss[0]
		}
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "encode yaml")
	case config.FormatText, "":
		for i, s := range ss {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprint(w, renderText(s))
		}
		return nil
	}

	return errors.Errorf("unknown output format %q", format)
}

func renderText(s cyclotomic.Summary) string {
	var b strings.Builder
	row := func(label, format string, args ...any) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(fmt.Sprintf(format, args...))
		b.WriteByte('\n')
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf("Gal(Q(ζ%d)/Q) ≅ (Z/%dZ)× ≅ %s", s.Modulus, s.Modulus, s.Structure)))
	b.WriteByte('\n')
	row("order φ(n)", "%d", s.Totient)
	row("cyclic", "%t", s.Cyclic)
	row("exponent λ(n)", "%d", s.Exponent)
	row("invariant factors", "%v", s.InvariantFactors)
	row("primary factors", "%s", primary(s.PrimaryFactors))
	row("generators", "%v", s.Generators)
	for _, f := range s.Factors {
		row(fmt.Sprintf("  mod %d^%d", f.Prime, f.Exponent), "%s (%s) gens %v", f.Structure, f.Kind, f.Generators)
	}

	if l := s.Lattice; l != nil {
		b.WriteString(sectionStyle.Render(fmt.Sprintf("Subgroup lattice: %d subgroups, μ = %d", l.Count, l.Mobius)))
		b.WriteByte('\n')
		for _, h := range l.Subgroups {
			kind := ""
			if h.Cyclic {
				kind = " cyclic"
			}
			b.WriteString(fmt.Sprintf("  %s%s %v\n", idStyle.Render(h.ID), kind, h.Elements))
		}
		covers := make([]string, len(l.Covers))
		for i, c := range l.Covers {
			covers[i] = c[0] + " ⋖ " + c[1]
		}
		row("covers", "%s", strings.Join(covers, ", "))
	}

	if c := s.CycleGraph; c != nil {
		b.WriteString(sectionStyle.Render(fmt.Sprintf("Cycle graph: %d nodes, %d edges", c.Nodes, len(c.Edges))))
		b.WriteByte('\n')
		for _, cy := range c.Cycles {
			b.WriteString(fmt.Sprintf("  ⟨%d⟩ %v\n", cy.Generator, cy.Elements))
		}
	}

	return b.String()
}

func primary(m map[int][]int) string {
	if len(m) == 0 {
		return "-"
	}
	ps := make([]int, 0, len(m))
	for p := range m {
		ps = append(ps, p)
	}
	sort.Ints(ps)
	var parts []string
	for _, p := range ps {
		for _, q := range m[p] {
			parts = append(parts, fmt.Sprintf("C%d", q))
		}
	}

	return strings.Join(parts, " x ")
}
