package model

import (
	markdown "github.com/MichaelMure/go-term-markdown"
)

// renderMarkdownToANSI renders note content for the detail overlay.
func renderMarkdownToANSI(md string, width int) string {
	if width < 40 {
		width = 40
	}
	out := markdown.Render(md, width-4, 4)
	return string(out)
}
