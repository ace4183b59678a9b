// Package blocks converts the lightweight markdown-like text bodies used by
// blog posts and projects into an ordered sequence of typed content blocks.
package blocks

import (
	"regexp"
	"strings"
)

var reNumbered = regexp.MustCompile(`^\d+\. `)

// Kind classifies a block.
type Kind string

const (
	KindHeading   Kind = "heading"
	KindBullets   Kind = "bullets"
	KindNumbered  Kind = "numbered"
	KindParagraph Kind = "paragraph"
)

// Item is one entry of a bullet or numbered list. A line of the form
// "Label: rest" is split on the first ": "; otherwise Label is empty and
// Text carries the whole line. Numbered items derive their number from
// position, not from the digits in the source text.
type Item struct {
	Label string `json:"label,omitempty"`
	Text  string `json:"text"`
}

// Block is a classified unit of rendered text.
type Block struct {
	Kind  Kind   `json:"kind"`
	Level int    `json:"level,omitempty"`
	Text  string `json:"text,omitempty"`
	Items []Item `json:"items,omitempty"`
}

// Render splits text on blank-line boundaries and classifies each paragraph
// by its leading prefix, first match wins. Pure; safe to call concurrently.
func Render(text string) []Block {
	var out []Block
	for _, para := range strings.Split(text, "\n\n") {
		switch {
		case strings.HasPrefix(para, "# "):
			out = append(out, Block{Kind: KindHeading, Level: 1, Text: strings.TrimPrefix(para, "# ")})
		case strings.HasPrefix(para, "## "):
			out = append(out, Block{Kind: KindHeading, Level: 2, Text: strings.TrimPrefix(para, "## ")})
		case strings.HasPrefix(para, "### "):
			out = append(out, Block{Kind: KindHeading, Level: 3, Text: strings.TrimPrefix(para, "### ")})
		case strings.HasPrefix(para, "- "):
			var items []Item
			for _, line := range strings.Split(para, "\n") {
				if !strings.HasPrefix(line, "- ") {
					continue
				}
				items = append(items, splitItem(strings.TrimPrefix(line, "- ")))
			}
			out = append(out, Block{Kind: KindBullets, Items: items})
		case reNumbered.MatchString(para):
			var items []Item
			for _, line := range strings.Split(para, "\n") {
				if !reNumbered.MatchString(line) {
					continue
				}
				items = append(items, splitItem(reNumbered.ReplaceAllString(line, "")))
			}
			out = append(out, Block{Kind: KindNumbered, Items: items})
		case strings.TrimSpace(para) != "":
			out = append(out, Block{Kind: KindParagraph, Text: para})
		}
		// Empty paragraphs produce no block.
	}
	return out
}

// splitItem splits a list line on the first ": " into a labeled item; lines
// without the separator become unlabeled items.
func splitItem(line string) Item {
	if idx := strings.Index(line, ": "); idx >= 0 {
		return Item{Label: line[:idx], Text: line[idx+2:]}
	}
	return Item{Text: line}
}
