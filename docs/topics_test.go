package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	// The documentation must stay in sync with the readme:
	// 1. Every topic listed in readme.md can be loaded.
	// 2. Every .md file (readme.md excluded) is listed in readme.md.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		matches := topicRegex.FindStringSubmatch(scanner.Text())
		if len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), ".md")
		if base == "readme" {
			continue
		}
		if !slices.Contains(topicsInReadme, base) {
			t.Errorf("topic %q is not listed in readme.md", base)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	slices.Sort(topicsInReadme)
	if !slices.Equal(all, topicsInReadme) {
		t.Errorf("GetAllTopics() = %v, want %v", all, topicsInReadme)
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("nope"); err == nil {
		t.Error("GetTopic(nope) expected an error")
	}
	if _, err := GetTopics("readme", "nope"); err == nil {
		t.Error("GetTopics(readme, nope) expected an error")
	}
}

func TestGetTopic_Star(t *testing.T) {
	got, err := GetTopic("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"# Entries files", "# Suggestions", "# Configuration"} {
		if !strings.Contains(got, title) {
			t.Errorf("GetTopic(*) does not contain %q", title)
		}
	}
}

func TestTitle(t *testing.T) {
	// every topic starts with a level 1 heading.
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range append(topics, "readme") {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatal(err)
		}
		headings := Headings([]byte(content))
		if len(headings) == 0 || headings[0].Level != 1 {
			t.Errorf("topic %q does not start with a level 1 heading: %v", topic, headings)
		}
	}

	got, err := Title("suggestions")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Suggestions" {
		t.Errorf("Title(suggestions) = %q, want %q", got, "Suggestions")
	}
}

func TestHeadings(t *testing.T) {
	src := []byte("# Title\n\ntext\n\n## Use `bt track`\n\n```\n# not a heading\n```\n")
	want := []Heading{{1, "Title"}, {2, "Use bt track"}}
	if got := Headings(src); !slices.Equal(got, want) {
		t.Errorf("Headings() = %v, want %v", got, want)
	}
}
