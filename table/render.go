// SPDX-License-Identifier: EPL-2.0

package table

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Renderer writes a Table in some textual form.
type Renderer interface {
	Render(w io.Writer, t *Table) error
}

// List renders the table as a single line of integers followed by a newline.
// An empty Separator means ", ".
type List struct {
	Separator string
}

func (l List) Render(w io.Writer, t *Table) error {
	sep := l.Separator
	if sep == "" {
		sep = ", "
	}

	var sb strings.Builder
	sb.Grow(len(t.Values)*(6+len(sep)) + 1)
	appendList(&sb, t.Values, sep)
	sb.WriteByte('\n')

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	return nil
}

var cIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// CArray renders the table as a C initializer that can be pasted into
// firmware sources:
//
//	// 4 frames, 1 channels, full scale 16384
//	const int16_t wavetable[4] = {
//	    0, -16383, 0, 16384
//	};
type CArray struct {
	// Name of the array; defaults to "wavetable".
	Name string
	// PerLine is the number of values per line; defaults to 16.
	PerLine int
}

func (c CArray) Render(w io.Writer, t *Table) error {
	name := c.Name
	if name == "" {
		name = "wavetable"
	}
	if !cIdentifier.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	perLine := c.PerLine
	if perLine <= 0 {
		perLine = 16
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "// %d frames, %d channels, full scale %d\n", t.Frames, t.Channels, FullScale)
	fmt.Fprintf(&sb, "const int16_t %s[%d] = {\n", name, t.Len())

	for start := 0; start < t.Len(); start += perLine {
		end := min(start+perLine, t.Len())
		sb.WriteString("    ")
		appendList(&sb, t.Values[start:end], ", ")
		if end < t.Len() {
			sb.WriteByte(',')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("};\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	return nil
}
