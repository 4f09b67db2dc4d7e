package form

import (
	"bytes"
	"html/template"
	"io"
	"strconv"

	"golang.org/x/exp/utf8string"
)

// Type フォーム項目の種類
type Type int

const (
	// TypeInput テキスト入力
	TypeInput Type = iota
	// TypeSelect 単一選択
	TypeSelect
)

// optionNameMaxLength 選択肢の表示名の最大文字数
const optionNameMaxLength = 20

// Option 選択肢
type Option struct {
	ID   int
	Name string
}

// Item ラベルと入力欄(または選択欄)からなるフォーム項目
//
// 状態を持たず、値の検証も行いません。
type Item struct {
	Type  Type
	Label string
	// Name 送信されるフォームフィールド名
	Name  string
	Value string
	// Options TypeSelectの場合の選択肢
	Options []Option
}

type optionView struct {
	ID       int
	Name     string
	Selected bool
}

type itemView struct {
	Label   string
	Name    string
	Value   string
	Options []optionView
}

var (
	inputTemplate = template.Must(template.New("input").Parse(
		`<div class="form-item"><label for="{{.Name}}">{{.Label}}</label><input type="text" id="{{.Name}}" name="{{.Name}}" value="{{.Value}}"></div>`,
	))
	selectTemplate = template.Must(template.New("select").Parse(
		`<div class="form-item"><label for="{{.Name}}">{{.Label}}</label><select id="{{.Name}}" name="{{.Name}}">` +
			`{{range .Options}}<option value="{{.ID}}"{{if .Selected}} selected{{end}}>{{.Name}}</option>{{end}}` +
			`</select></div>`,
	))
)

// Render 項目をHTMLとしてwに書き込みます
func (i Item) Render(w io.Writer) error {
	v := itemView{Label: i.Label, Name: i.Name, Value: i.Value}
	if i.Type != TypeSelect {
		return inputTemplate.Execute(w, v)
	}
	v.Options = make([]optionView, len(i.Options))
	for k, o := range i.Options {
		v.Options[k] = optionView{
			ID:       o.ID,
			Name:     truncate(o.Name, optionNameMaxLength),
			Selected: strconv.Itoa(o.ID) == i.Value,
		}
	}
	return selectTemplate.Execute(w, v)
}

// HTML 項目をHTMLとして返します
func (i Item) HTML() (template.HTML, error) {
	var b bytes.Buffer
	if err := i.Render(&b); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}

func truncate(s string, n int) string {
	us := utf8string.NewString(s)
	if us.RuneCount() <= n {
		return s
	}
	return us.Slice(0, n) + "…"
}
