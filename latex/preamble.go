package latex

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Margins holds per-edge page margins as opaque dimension strings (for
// example "2cm"). Empty edges are left at the LaTeX default.
type Margins struct {
	Top    string
	Bottom string
	Left   string
	Right  string
}

func (m Margins) isZero() bool {
	return m.Top == "" && m.Bottom == "" && m.Left == "" && m.Right == ""
}

type pkgEntry struct {
	name    string
	options string
}

// Preamble accumulates the package registrations and custom declarations
// that must precede the document body. Packages keep insertion order;
// re-adding a package overwrites its options in place, last write wins.
type Preamble struct {
	packages []pkgEntry
	index    map[string]int
	commands []string
}

// NewPreamble returns a preamble seeded with the default package set.
func NewPreamble() *Preamble {
	p := &Preamble{index: make(map[string]int)}
	p.AddPackage("amsmath", "")
	p.AddPackage("amsfonts", "")
	p.AddPackage("amssymb", "")
	p.AddPackage("inputenc", "utf8")
	p.AddPackage("fontenc", "T1")
	p.AddPackage("graphicx", "")
	p.AddPackage("hyperref", "")
	p.AddPackage("tcolorbox", "")
	p.AddPackage("CJKutf8", "")
	return p
}

// AddPackage registers a package with optional options (without brackets).
// Adding an already registered package replaces its options and keeps its
// position.
func (p *Preamble) AddPackage(name, options string) {
	if i, ok := p.index[name]; ok {
		p.packages[i].options = options
		return
	}
	p.index[name] = len(p.packages)
	p.packages = append(p.packages, pkgEntry{name: name, options: options})
}

// HasPackage reports whether the package is registered.
func (p *Preamble) HasPackage(name string) bool {
	_, ok := p.index[name]
	return ok
}

// AddCommand appends a raw declaration emitted verbatim after everything
// else, in insertion order.
func (p *Preamble) AddCommand(cmd string) {
	p.commands = append(p.commands, cmd)
}

// AddCommandOnce appends a raw declaration unless the exact same text is
// already present. Used for declarations registered as element side effects,
// which must stay idempotent.
func (p *Preamble) AddCommandOnce(cmd string) {
	for _, existing := range p.commands {
		if existing == cmd {
			return
		}
	}
	p.commands = append(p.commands, cmd)
}

// PreambleInfo carries the document state the preamble depends on. The bold
// font file is discovered by the resource-processing pass and may be empty.
type PreambleInfo struct {
	Margins      Margins
	LineSpacing  float64
	FontFile     string
	FontName     string
	BoldFontFile string
}

// Build assembles the preamble text. The order is fixed: document class,
// font-system packages when a font file is set, the generic package loop,
// the main-font declaration, geometry, line spacing, custom declarations.
// Build itself cannot fail; anything fallible (missing files) is handled by
// the resource-processing pass that runs earlier.
func (p *Preamble) Build(info PreambleInfo) string {
	var buf strings.Builder
	buf.WriteString("\\documentclass[a4paper]{article}\n")

	useFontspec := info.FontFile != ""
	skip := map[string]bool{}
	if useFontspec {
		// fontspec/xeCJK supersede the legacy multi-byte setup
		buf.WriteString("\\usepackage{fontspec}\n")
		buf.WriteString("\\usepackage{xeCJK}\n")
		skip["CJKutf8"] = true
		skip["inputenc"] = true
		skip["fontenc"] = true
	}

	for _, e := range p.packages {
		if skip[e.name] {
			continue
		}
		if e.options != "" {
			fmt.Fprintf(&buf, "\\usepackage[%s]{%s}\n", e.options, e.name)
		} else {
			fmt.Fprintf(&buf, "\\usepackage{%s}\n", e.name)
		}
	}

	if useFontspec {
		buf.WriteString("\n% font setup\n")
		buf.WriteString(mainFontDeclaration(info))
		buf.WriteString("\n")
	}

	if !info.Margins.isZero() {
		var opts []string
		if info.Margins.Top != "" {
			opts = append(opts, "top="+info.Margins.Top)
		}
		if info.Margins.Bottom != "" {
			opts = append(opts, "bottom="+info.Margins.Bottom)
		}
		if info.Margins.Left != "" {
			opts = append(opts, "left="+info.Margins.Left)
		}
		if info.Margins.Right != "" {
			opts = append(opts, "right="+info.Margins.Right)
		}
		fmt.Fprintf(&buf, "\\usepackage[%s]{geometry}\n", strings.Join(opts, ","))
	}

	if info.LineSpacing > 0 {
		buf.WriteString("\\usepackage{setspace}\n")
		fmt.Fprintf(&buf, "\\setstretch{%s}\n", strconv.FormatFloat(info.LineSpacing, 'g', -1, 64))
	}

	if len(p.commands) > 0 {
		buf.WriteString("\n")
		for _, cmd := range p.commands {
			buf.WriteString(cmd)
			buf.WriteString("\n")
		}
	}

	return buf.String()
}

// mainFontDeclaration emits the xeCJK main-font declaration. When the font
// lives under a conventional fonts subdirectory the path is shortened to the
// relative form the compile working directory expects; paths containing
// whitespace are quoted.
func mainFontDeclaration(info PreambleInfo) string {
	fontFilename := filepath.Base(info.FontFile)
	displayName := info.FontName
	if displayName == "" {
		displayName = strings.TrimSuffix(fontFilename, filepath.Ext(fontFilename))
	}

	fontDir := filepath.ToSlash(filepath.Dir(info.FontFile))
	if strings.Contains(strings.ToLower(fontDir), "/"+fontsSubdir) ||
		strings.EqualFold(fontDir, fontsSubdir) {
		fontDir = fontsSubdir
	}
	if strings.ContainsAny(fontDir, " \t") && !strings.HasPrefix(fontDir, `"`) {
		fontDir = `"` + fontDir + `"`
	}

	opts := fmt.Sprintf("Path=%s/, UprightFont=%s", fontDir, fontFilename)
	if info.BoldFontFile != "" {
		opts += fmt.Sprintf(", BoldFont=%s", filepath.Base(info.BoldFontFile))
	}
	return fmt.Sprintf("\\setCJKmainfont{%s}[%s]\n", displayName, opts)
}
