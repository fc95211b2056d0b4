// Package docs embeds the user documentation of the bt command.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

//go:embed *.md
var docs embed.FS

// GetTopic returns the content of a documentation topic. "*" returns all
// topics.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		topics, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(topics...)
	}

	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple documentation topics concatenated together.
func GetTopics(topics ...string) (string, error) {
	var b bytes.Buffer
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		if topic != "*" {
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted list of topics, readme excluded.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, f := range files {
		base := strings.TrimSuffix(path.Base(f), ".md")
		if base == "readme" {
			continue
		}
		topics = append(topics, base)
	}
	sort.Strings(topics)
	return topics, nil
}

// Title returns the text of the first heading of a topic.
func Title(topic string) (string, error) {
	content, err := GetTopic(topic)
	if err != nil {
		return "", err
	}
	headings := Headings([]byte(content))
	if len(headings) == 0 {
		return "", fmt.Errorf("topic %q has no heading", topic)
	}
	return headings[0].Text, nil
}

// Heading is a markdown heading.
type Heading struct {
	Level int
	Text  string
}

// Headings parses a markdown document and returns its headings in order.
func Headings(src []byte) []Heading {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var headings []Heading
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for c := h.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *ast.Text:
				b.Write(t.Segment.Value(src))
			case *ast.CodeSpan:
				for cc := t.FirstChild(); cc != nil; cc = cc.NextSibling() {
					if tt, ok := cc.(*ast.Text); ok {
						b.Write(tt.Segment.Value(src))
					}
				}
			}
		}
		headings = append(headings, Heading{Level: h.Level, Text: b.String()})
		return ast.WalkSkipChildren, nil
	})
	return headings
}
