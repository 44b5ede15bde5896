package builder

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var fontExtensions = []string{".ttf", ".otf", ".ttc", ".woff", ".woff2"}

// SetFontFromURL downloads a font file into fontsDir (default "fonts") and
// configures it as the document font. The filename is taken from the URL
// path, falling back to the Content-Disposition header and finally to
// "font.ttf".
func (b *DocumentBuilder) SetFontFromURL(fontURL, name, fontsDir string) *DocumentBuilder {
	if b.err != nil {
		return b
	}
	if fontsDir == "" {
		fontsDir = "fonts"
	}
	fontPath, err := downloadFont(fontURL, fontsDir)
	if err != nil {
		b.fail(fmt.Errorf("unable to download font %s: %w", fontURL, err))
		return b
	}
	return b.SetFontFile(fontPath, name)
}

func downloadFont(fontURL, fontsDir string) (string, error) {
	if err := os.MkdirAll(fontsDir, 0755); err != nil {
		return "", fmt.Errorf("unable to create fonts directory: %w", err)
	}

	resp, err := http.Get(fontURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	filename := fontFilename(fontURL, resp.Header.Get("Content-Disposition"))
	fontPath := filepath.Join(fontsDir, filename)

	f, err := os.Create(fontPath)
	if err != nil {
		return "", fmt.Errorf("unable to create font file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return "", fmt.Errorf("unable to save font file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("unable to finalize font file: %w", err)
	}
	return fontPath, nil
}

// fontFilename picks the destination filename for a downloaded font.
func fontFilename(fontURL, contentDisposition string) string {
	if u, err := url.Parse(fontURL); err == nil {
		name := path.Base(u.Path)
		if hasFontExtension(name) {
			return name
		}
	}
	if contentDisposition != "" {
		if _, params, err := mime.ParseMediaType(contentDisposition); err == nil {
			if name := params["filename"]; name != "" {
				return filepath.Base(name)
			}
		}
	}
	return "font.ttf"
}

func hasFontExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, known := range fontExtensions {
		if ext == known {
			return true
		}
	}
	return false
}
