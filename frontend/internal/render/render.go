// Package render turns a thread forest into the HTML fragment shown on a
// forum page.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	frontend_domain "github.com/coursehub/forumtree/frontend/internal/domain"
	"github.com/coursehub/forumtree/frontend/internal/markdown"
	"github.com/coursehub/forumtree/shared/threadtree"
)

const DefaultIndentUnit = 20

const createdLayout = "2006-01-02 15:04"

// Nodes are emitted flat in pre-order; nesting is expressed by margin only so
// that deep forests do not produce deeply nested markup.
const fragmentTmpl = `{{range .}}<article id="thread-{{.Id}}" class="thread-node{{if not .ParentId}} thread-root{{end}}" data-thread-id="{{.Id}}" data-depth="{{.Depth}}" style="margin-left: {{.Indent}}px">
<header class="thread-meta"><span class="thread-title">{{.DisplayTitle}}</span>{{if .AuthorId}} <span class="thread-author">{{.AuthorId}}</span>{{end}}{{if .Created}} <time>{{.Created}}</time>{{end}}</header>
<div class="thread-body">{{.Body}}</div>
<button type="button" class="reply-button" data-action="reply" data-thread-id="{{.Id}}">Reply</button>
</article>
{{end}}`

var fragment = template.Must(template.New("fragment").Parse(fragmentTmpl))

type Renderer struct {
	text       *markdown.TextProcessor
	indentUnit int
	maxDepth   int
}

// New returns a Renderer. indentUnit <= 0 uses DefaultIndentUnit and
// maxDepth <= 0 uses threadtree.DefaultMaxDepth.
func New(text *markdown.TextProcessor, indentUnit, maxDepth int) *Renderer {
	if indentUnit <= 0 {
		indentUnit = DefaultIndentUnit
	}
	return &Renderer{text: text, indentUnit: indentUnit, maxDepth: maxDepth}
}

// Nodes flattens roots into view models in display order.
func (r *Renderer) Nodes(roots []*threadtree.Node) ([]frontend_domain.ThreadNode, error) {
	entries, err := threadtree.Flatten(roots, r.maxDepth)
	if err != nil {
		return nil, err
	}
	nodes := make([]frontend_domain.ThreadNode, 0, len(entries))
	for _, e := range entries {
		rec := e.Node.Record
		n := frontend_domain.ThreadNode{
			ThreadRecord: rec,
			Depth:        e.Depth,
			Indent:       e.Depth * r.indentUnit,
			Body:         r.text.Render(rec.Body),
		}
		if !rec.CreatedAt.IsZero() {
			n.Created = rec.CreatedAt.Format(createdLayout)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// RenderForest renders roots as one HTML fragment. An empty forest yields an
// empty fragment. Nothing is returned on error.
func (r *Renderer) RenderForest(roots []*threadtree.Node) (template.HTML, error) {
	nodes, err := r.Nodes(roots)
	if err != nil {
		return "", err
	}
	if len(nodes) == 0 {
		return "", nil
	}
	var buf bytes.Buffer
	if err := fragment.Execute(&buf, nodes); err != nil {
		return "", fmt.Errorf("render forest: %w", err)
	}
	return template.HTML(buf.String()), nil
}
