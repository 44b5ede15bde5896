package latex

import (
	"fmt"
	"strings"
)

// Equation is a single formula, either inline ($...$) or displayed. The
// formula is raw LaTeX math and passes through unescaped.
type Equation struct {
	container
	Equation string
	Inline   bool
	Label    string
}

func NewEquation(equation string, inline bool, label string) *Equation {
	return &Equation{Equation: equation, Inline: inline, Label: label}
}

func (e *Equation) LaTeX() string {
	if e.Inline {
		return fmt.Sprintf("$%s$", e.Equation)
	}
	var buf strings.Builder
	buf.WriteString("\\[\n")
	fmt.Fprintf(&buf, "    %s\n", e.Equation)
	buf.WriteString("\\]")
	if e.Label != "" {
		fmt.Fprintf(&buf, "\n\\label{%s}", e.Label)
	}
	return buf.String()
}

// Align is a multi-line formula using the align environment. Unnumbered
// alignments use the starred form.
type Align struct {
	container
	Equations []string
	Label     string
	Numbered  bool
	VSpace    string
}

func NewAlign(equations []string, label string, numbered bool) *Align {
	return &Align{Equations: equations, Label: label, Numbered: numbered}
}

func (a *Align) LaTeX() string {
	env := "align*"
	if a.Numbered {
		env = "align"
	}
	var buf strings.Builder
	if a.VSpace != "" {
		fmt.Fprintf(&buf, "\\vspace{%s}\n", a.VSpace)
	}
	fmt.Fprintf(&buf, "\\begin{%s}\n", env)
	for _, eq := range a.Equations {
		fmt.Fprintf(&buf, "    %s\n", eq)
	}
	if a.Label != "" {
		fmt.Fprintf(&buf, "    \\label{%s}\n", a.Label)
	}
	fmt.Fprintf(&buf, "\\end{%s}\n", env)
	return buf.String()
}
