package latex

import (
	"fmt"
	"os"
	"strings"

	"github.com/disintegration/imaging"
)

const imagesSubdir = "images"

// Image is an included graphic wrapped in a figure environment. The source
// file is copied into the images subdirectory of the output tree by the
// resource-processing pass; rendering uses the cached relative path and does
// no I/O.
type Image struct {
	container
	Path     string
	Caption  string
	Width    string // fraction of \textwidth, e.g. "0.8"
	Height   string // fraction of \textheight, empty to omit
	Label    string
	Position string // float placement, e.g. "h"

	// MaxWidth, when positive, downscales raster images wider than this
	// many pixels during resource processing instead of byte-copying them.
	MaxWidth int

	processedPath string
}

func NewImage(path, caption, width, label string) *Image {
	if width == "" {
		width = "0.8"
	}
	return &Image{Path: path, Caption: caption, Width: width, Label: label, Position: "h"}
}

func (i *Image) LaTeX() string {
	path := i.processedPath
	if path == "" {
		path = i.Path
	}
	var buf strings.Builder
	fmt.Fprintf(&buf, "\\begin{figure}[%s]\n", i.Position)
	buf.WriteString("    \\centering\n")

	var opts []string
	if i.Width != "" {
		opts = append(opts, fmt.Sprintf("width=%s\\textwidth", i.Width))
	}
	if i.Height != "" {
		opts = append(opts, fmt.Sprintf("height=%s\\textheight", i.Height))
	}
	buf.WriteString("    \\includegraphics")
	if len(opts) > 0 {
		fmt.Fprintf(&buf, "[%s]", strings.Join(opts, ", "))
	}
	fmt.Fprintf(&buf, "{%s}\n", path)

	if i.Caption != "" {
		fmt.Fprintf(&buf, "    \\caption{%s}\n", i.Caption)
	}
	if i.Label != "" {
		fmt.Fprintf(&buf, "    \\label{%s}\n", i.Label)
	}
	buf.WriteString("\\end{figure}\n")
	return buf.String()
}

// ProcessResources copies (or downscales) the image into outputDir/images
// and caches the relative path used by rendering.
func (i *Image) ProcessResources(outputDir string) (map[string]string, error) {
	if _, err := os.Stat(i.Path); err != nil {
		return nil, fmt.Errorf("image file not found: %s", i.Path)
	}
	if err := ensureDir(fmt.Sprintf("%s/%s", outputDir, imagesSubdir)); err != nil {
		return nil, err
	}

	dst, rel := destPath(outputDir, imagesSubdir, i.Path)
	if i.MaxWidth > 0 && isRasterImage(i.Path) {
		if err := i.resizeInto(dst); err != nil {
			return nil, err
		}
	} else if err := copyFile(i.Path, dst); err != nil {
		return nil, err
	}

	i.processedPath = rel

	result := map[string]string{i.Path: rel}
	children, err := i.container.ProcessResources(outputDir)
	if err != nil {
		return nil, err
	}
	for k, v := range children {
		result[k] = v
	}
	return result, nil
}

func (i *Image) resizeInto(dst string) error {
	img, err := imaging.Open(i.Path)
	if err != nil {
		return fmt.Errorf("unable to decode image %s: %w", i.Path, err)
	}
	if img.Bounds().Dx() > i.MaxWidth {
		img = imaging.Resize(img, i.MaxWidth, 0, imaging.Lanczos)
	}
	if err := imaging.Save(img, dst); err != nil {
		return fmt.Errorf("unable to save resized image %s: %w", dst, err)
	}
	return nil
}

// TikZ is an embedded tikzpicture. The drawing code is raw LaTeX and passes
// through unescaped. Inline drawings emit only the tikzpicture environment;
// otherwise the picture is wrapped in a centered figure with optional
// caption and label. Required tikz libraries are registered in the preamble
// when the document is rendered.
type TikZ struct {
	container
	Code      string
	Caption   string
	Label     string
	Libraries []string
	Inline    bool
}

func NewTikZ(code string, inline bool) *TikZ {
	return &TikZ{Code: code, Inline: inline}
}

func (t *TikZ) LaTeX() string {
	var buf strings.Builder
	if !t.Inline {
		buf.WriteString("\\begin{figure}[h]\n")
		buf.WriteString("    \\centering\n")
	}
	buf.WriteString("\\begin{tikzpicture}\n")
	buf.WriteString(strings.TrimRight(t.Code, "\n"))
	buf.WriteString("\n\\end{tikzpicture}\n")
	if !t.Inline {
		if t.Caption != "" {
			fmt.Fprintf(&buf, "    \\caption{%s}\n", t.Caption)
		}
		if t.Label != "" {
			fmt.Fprintf(&buf, "    \\label{%s}\n", t.Label)
		}
		buf.WriteString("\\end{figure}\n")
	}
	return buf.String()
}
