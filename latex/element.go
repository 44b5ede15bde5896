// Package latex implements the document object model and LaTeX serialization
// for texgen. Elements form an ordered tree owned by a Document; rendering is
// a depth-first walk producing balanced LaTeX environments, and a separate
// resource-processing pass copies file-backed assets (images, fonts) into the
// output tree before any rendering happens.
package latex

// Element is a node in the document tree. LaTeX returns the markup for the
// element and all its children; ProcessResources copies any file-backed
// assets owned by the element (or its children) into outputDir and returns
// the mapping from original path to the path rendering will use.
//
// Rendering performs no I/O: everything a render needs must be cached by
// ProcessResources beforehand.
type Element interface {
	LaTeX() string
	ProcessResources(outputDir string) (map[string]string, error)
	Add(child Element)
	Children() []Element
}

// container is embedded by every element type and owns the ordered child
// list. Insertion order is render order.
type container struct {
	children []Element
}

// Add appends child to the ordered child list. A child must be attached to
// exactly one parent; the tree never shares nodes.
func (c *container) Add(child Element) {
	c.children = append(c.children, child)
}

// Children returns the child list in insertion order.
func (c *container) Children() []Element {
	return c.children
}

// ProcessResources recurses into children and merges their path mappings
// bottom-up. Elements owning file-backed resources override this. Two
// distinct sources mapping to the same destination overwrite silently,
// last processed wins.
func (c *container) ProcessResources(outputDir string) (map[string]string, error) {
	result := make(map[string]string)
	for _, child := range c.children {
		m, err := child.ProcessResources(outputDir)
		if err != nil {
			return nil, err
		}
		for k, v := range m {
			result[k] = v
		}
	}
	return result, nil
}

// childrenLaTeX renders every child in insertion order, placing sep between
// the accumulated output and each child's markup.
func (c *container) childrenLaTeX(sep string) string {
	var buf []byte
	for _, child := range c.children {
		buf = append(buf, sep...)
		buf = append(buf, child.LaTeX()...)
	}
	return string(buf)
}
