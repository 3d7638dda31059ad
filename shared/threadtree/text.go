package threadtree

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

const defaultIndentWidth = 2

type TextOptions struct {
	IndentWidth int // spaces per depth level
	MaxDepth    int
}

// RenderText writes a plain-text outline of the forest. Each node is
// indented by depth*IndentWidth spaces, its body lines one level further.
// Nothing is written if the walk fails.
func RenderText(w io.Writer, roots []*Node, opts TextOptions) error {
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = defaultIndentWidth
	}

	buf := new(bytes.Buffer)
	err := Walk(roots, opts.MaxDepth, func(node *Node, depth int) error {
		indent := strings.Repeat(" ", depth*opts.IndentWidth)
		rec := node.Record

		fmt.Fprintf(buf, "%s#%s", indent, rec.Id)
		if title := rec.DisplayTitle(); title != "" {
			fmt.Fprintf(buf, " %s", title)
		}
		if rec.AuthorId != "" {
			fmt.Fprintf(buf, " by %s", rec.AuthorId)
		}
		if !rec.CreatedAt.IsZero() {
			fmt.Fprintf(buf, " at %s", rec.CreatedAt.Format("2006-01-02 15:04"))
		}
		buf.WriteByte('\n')

		body := strings.TrimSpace(rec.Body)
		if body == "" {
			return nil
		}
		bodyIndent := indent + strings.Repeat(" ", opts.IndentWidth)
		for _, line := range strings.Split(body, "\n") {
			buf.WriteString(bodyIndent)
			buf.WriteString(strings.TrimRight(line, " \t\r"))
			buf.WriteByte('\n')
		}
		return nil
	})
	if err != nil {
		return err
	}

	_, err = buf.WriteTo(w)
	return err
}
