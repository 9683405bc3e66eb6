// Package docs embeds the ft documentation, one markdown file per topic.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strings"
)

//go:embed *.md
var files embed.FS

// index is the topic listing every other one.
const index = "readme"

// GetTopic returns the markdown of a topic, or of every topic for "*".
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(all...)
	}
	content, err := files.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the topics one after the other.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
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

// GetAllTopics returns the sorted topic names, readme excluded.
func GetAllTopics() ([]string, error) {
	names, err := fs.Glob(files, "*.md")
	if err != nil {
		return nil, err
	}
	topics := make([]string, 0, len(names))
	for _, name := range names {
		if topic := strings.TrimSuffix(name, ".md"); topic != index {
			topics = append(topics, topic)
		}
	}
	slices.Sort(topics)
	return topics, nil
}

// Summary is a topic with the line the readme describes it with.
type Summary struct {
	Topic    string
	Synopsis string
}

// indexEntry matches a readme line like "* piggybanks: daily savings".
var indexEntry = regexp.MustCompile(`^\*\s+([^:]+):\s*(.*)$`)

// Summaries returns the topics listed in the readme, in the readme order.
func Summaries() ([]Summary, error) {
	readme, err := GetTopic(index)
	if err != nil {
		return nil, err
	}
	var summaries []Summary
	for _, line := range strings.Split(readme, "\n") {
		if m := indexEntry.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			summaries = append(summaries, Summary{Topic: strings.TrimSpace(m[1]), Synopsis: m[2]})
		}
	}
	return summaries, nil
}
