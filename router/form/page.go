package form

import (
	"html/template"
	"io"
)

// Page フォーム項目を並べたフォームページ
type Page struct {
	Title  string
	Action string
	Method string
	Items  []Item
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<form action="{{.Action}}" method="{{.Method}}">
{{range .Items}}{{.}}
{{end}}<button type="submit">{{.Title}}</button>
</form>
</body>
</html>
`))

// Render ページをHTMLとしてwに書き込みます
func (p Page) Render(w io.Writer) error {
	items := make([]template.HTML, len(p.Items))
	for k, i := range p.Items {
		h, err := i.HTML()
		if err != nil {
			return err
		}
		items[k] = h
	}
	method := p.Method
	if len(method) == 0 {
		method = "post"
	}
	return pageTemplate.Execute(w, struct {
		Title  string
		Action string
		Method string
		Items  []template.HTML
	}{p.Title, p.Action, method, items})
}
