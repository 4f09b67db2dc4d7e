package form

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parseFragment(t *testing.T, s string) []*html.Node {
	t.Helper()
	nodes, err := html.ParseFragment(strings.NewReader(s), &html.Node{Type: html.ElementNode, Data: "body"})
	require.NoError(t, err)
	return nodes
}

func findAll(n *html.Node, tag string) []*html.Node {
	var res []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			res = append(res, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return res
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func text(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

func TestItem_Render(t *testing.T) {
	t.Parallel()

	t.Run("input", func(t *testing.T) {
		t.Parallel()
		var b bytes.Buffer
		require.NoError(t, Item{Type: TypeInput, Label: "이름", Name: "name", Value: "성수 카페"}.Render(&b))

		nodes := parseFragment(t, b.String())
		require.Len(t, nodes, 1)
		labels := findAll(nodes[0], "label")
		inputs := findAll(nodes[0], "input")
		assert.Empty(t, findAll(nodes[0], "select"))
		if assert.Len(t, labels, 1) {
			assert.Equal(t, "이름", text(labels[0]))
		}
		if assert.Len(t, inputs, 1) {
			name, _ := attr(inputs[0], "name")
			value, _ := attr(inputs[0], "value")
			assert.Equal(t, "name", name)
			assert.Equal(t, "성수 카페", value)
		}
	})

	t.Run("select", func(t *testing.T) {
		t.Parallel()
		var b bytes.Buffer
		require.NoError(t, Item{
			Type:  TypeSelect,
			Label: "카테고리",
			Name:  "categoryId",
			Value: "2",
			Options: []Option{
				{ID: 1, Name: "음식점"},
				{ID: 2, Name: "카페"},
				{ID: 3, Name: "관광명소"},
			},
		}.Render(&b))

		nodes := parseFragment(t, b.String())
		require.Len(t, nodes, 1)
		assert.Empty(t, findAll(nodes[0], "input"))
		selects := findAll(nodes[0], "select")
		require.Len(t, selects, 1)
		name, _ := attr(selects[0], "name")
		assert.Equal(t, "categoryId", name)

		options := findAll(selects[0], "option")
		if assert.Len(t, options, 3) {
			for i, o := range options {
				_, selected := attr(o, "selected")
				assert.Equal(t, i == 1, selected)
			}
			v, _ := attr(options[2], "value")
			assert.Equal(t, "3", v)
			assert.Equal(t, "관광명소", text(options[2]))
		}
	})

	t.Run("select without matching value", func(t *testing.T) {
		t.Parallel()
		h, err := Item{Type: TypeSelect, Name: "emotionId", Options: []Option{{ID: 1, Name: "행복"}}}.HTML()
		require.NoError(t, err)
		assert.NotContains(t, string(h), "selected")
	})

	t.Run("escape", func(t *testing.T) {
		t.Parallel()
		h, err := Item{Type: TypeInput, Label: "<b>", Name: "x", Value: `"><script>`}.HTML()
		require.NoError(t, err)
		assert.NotContains(t, string(h), "<script>")
		assert.NotContains(t, string(h), "<b>")
	})

	t.Run("long option name", func(t *testing.T) {
		t.Parallel()
		h, err := Item{Type: TypeSelect, Name: "groupId", Options: []Option{{ID: 1, Name: strings.Repeat("가", 30)}}}.HTML()
		require.NoError(t, err)
		assert.Contains(t, string(h), strings.Repeat("가", 20)+"…")
		assert.NotContains(t, string(h), strings.Repeat("가", 21))
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab…", truncate("abc", 2))
	assert.Equal(t, "기본…", truncate("기본그룹", 2))
}

func TestPage_Render(t *testing.T) {
	t.Parallel()
	var b bytes.Buffer
	require.NoError(t, Page{
		Title:  "핀 등록",
		Action: "/api/user/pin",
		Items: []Item{
			{Type: TypeInput, Label: "이름", Name: "name"},
			{Type: TypeSelect, Label: "감정", Name: "emotionId", Options: []Option{{ID: 1, Name: "행복"}}},
		},
	}.Render(&b))

	doc, err := html.Parse(&b)
	require.NoError(t, err)
	forms := findAll(doc, "form")
	require.Len(t, forms, 1)
	action, _ := attr(forms[0], "action")
	method, _ := attr(forms[0], "method")
	assert.Equal(t, "/api/user/pin", action)
	assert.Equal(t, "post", method)
	assert.Len(t, findAll(forms[0], "label"), 2)
	assert.Len(t, findAll(forms[0], "input"), 1)
	assert.Len(t, findAll(forms[0], "select"), 1)
}
