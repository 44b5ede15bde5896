package latex

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

const fontsSubdir = "fonts"

// DefaultCJKFont is the legacy multi-byte font family used when no font file
// is configured ("min" is the Mincho face, "goth" the Gothic one).
const DefaultCJKFont = "min"

// Document is the root of the element tree. It carries the document-level
// metadata, owns the preamble state and the ordered top-level children, and
// runs the resource-processing passes before serialization.
//
// A Document is built once, rendered once and then discarded; building a
// second document means starting a new instance.
type Document struct {
	container

	Title    string
	Author   string
	Date     string
	Abstract string

	// Font is the legacy CJK font family, used only when no font file is
	// configured.
	Font string

	Margins Margins

	fontFile          string
	fontName          string
	processedFontFile string
	boldFontFile      string
	lineSpacing       float64

	preamble *Preamble
}

// NewDocument returns an empty document with the default preamble.
func NewDocument(title, author, date string) *Document {
	return &Document{
		Title:    title,
		Author:   author,
		Date:     date,
		Font:     DefaultCJKFont,
		preamble: NewPreamble(),
	}
}

// Preamble exposes the preamble accumulator shared by the builders.
func (d *Document) Preamble() *Preamble {
	return d.preamble
}

// SetAbstract sets the abstract text rendered before the body.
func (d *Document) SetAbstract(abstract string) {
	d.Abstract = abstract
}

// SetFontFile configures an explicit font file (switching the document from
// the legacy CJK setup to fontspec/xeCJK). The file must exist when it is
// set; the name defaults to the file stem.
func (d *Document) SetFontFile(path, name string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("font file not found: %s", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("unable to resolve font path %s: %w", path, err)
	}
	d.fontFile = abs
	if name == "" {
		base := filepath.Base(abs)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	d.fontName = name
	return nil
}

// FontFile returns the configured font file path, empty when the legacy CJK
// setup is in effect. After resource processing it points at the copy inside
// the output tree; the configured source path itself is never rewritten.
func (d *Document) FontFile() string {
	if d.processedFontFile != "" {
		return d.processedFontFile
	}
	return d.fontFile
}

// FontName returns the display name used by the main-font declaration.
func (d *Document) FontName() string { return d.fontName }

// SetLineSpacing sets the line-spacing stretch factor. The factor must be
// positive.
func (d *Document) SetLineSpacing(spacing float64) error {
	if spacing <= 0 {
		return fmt.Errorf("line spacing must be positive, got %g", spacing)
	}
	d.lineSpacing = spacing
	return nil
}

// LineSpacing returns the stretch factor, zero when unset.
func (d *Document) LineSpacing() float64 { return d.lineSpacing }

// ProcessResources copies every file-backed asset referenced by the tree
// (images first, then the font file with its bold variant) into outputDir
// and caches the resolved paths for rendering. It must run before LaTeX().
// Destination collisions are not deduplicated: last processed wins.
func (d *Document) ProcessResources(outputDir string) (map[string]string, error) {
	result, err := d.container.ProcessResources(outputDir)
	if err != nil {
		return nil, err
	}
	rel, err := d.processFonts(outputDir)
	if err != nil {
		return nil, err
	}
	if rel != "" {
		result[d.fontFile] = rel
	}
	return result, nil
}

// processFonts copies the configured font into outputDir/fonts and performs
// a best-effort search for a matching bold variant next to the source file.
// A missing bold variant is not an error; the font declaration simply omits
// the bold face.
func (d *Document) processFonts(outputDir string) (string, error) {
	if d.fontFile == "" {
		return "", nil
	}
	src := d.fontFile
	if _, err := os.Stat(src); err != nil {
		return "", fmt.Errorf("font file not found: %s", src)
	}

	fontsDir := filepath.Join(outputDir, fontsSubdir)
	if err := ensureDir(fontsDir); err != nil {
		return "", err
	}

	dst, rel := destPath(outputDir, fontsSubdir, src)
	// the source may already live inside the output tree; copying a file
	// onto itself would truncate it
	if !samePath(src, dst) {
		if err := copyFile(src, dst); err != nil {
			return "", err
		}
	}

	if bold := findBoldVariant(src); bold != "" {
		boldDst := filepath.Join(fontsDir, filepath.Base(bold))
		if !samePath(bold, boldDst) {
			if err := copyFile(bold, boldDst); err != nil {
				return "", err
			}
		}
		d.boldFontFile = boldDst
	}

	// rendering refers to the copy, so the preamble can shorten its path;
	// the configured source in fontFile stays untouched so repeated passes
	// copy from the original again
	abs, err := filepath.Abs(dst)
	if err != nil {
		return "", fmt.Errorf("unable to resolve font path %s: %w", dst, err)
	}
	d.processedFontFile = abs
	return rel, nil
}

// findBoldVariant looks for a bold weight next to the regular font file. It
// first tries the usual rename patterns, then falls back to any sibling
// whose name contains "Bold" (case sensitive) with the same extension.
func findBoldVariant(fontPath string) string {
	dir := filepath.Dir(fontPath)
	ext := filepath.Ext(fontPath)
	stem := strings.TrimSuffix(filepath.Base(fontPath), ext)

	patterns := []string{
		strings.ReplaceAll(stem, "Regular", "Bold"),
		strings.ReplaceAll(stem, "-Regular", "-Bold"),
		strings.ReplaceAll(stem, "_Regular", "_Bold"),
		stem + "Bold",
		stem + "-Bold",
		stem + "_Bold",
	}
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		if pattern == stem || seen[pattern] {
			continue
		}
		seen[pattern] = true
		candidate := filepath.Join(dir, pattern+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*Bold*"+ext))
	if err != nil || len(matches) == 0 {
		return ""
	}
	sort.Sort(natural.StringSlice(matches))
	return matches[0]
}
