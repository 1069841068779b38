package ui

import (
	"bytes"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/tsplay/internal/report"
)

// Token is one lexical token of the source
type Token struct {
	Type  string
	Value string
}

// HighlightCode applies syntax highlighting to code using chroma and the
// current theme's code style
func HighlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(CurrentTheme().CodeStyle)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}

// Tokenize splits code into tokens, dropping whitespace
func Tokenize(code, language string) []Token {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return nil
	}

	var tokens []Token
	for _, tok := range iterator.Tokens() {
		if tok.Type == chroma.Text && strings.TrimSpace(tok.Value) == "" {
			continue
		}
		if tok.Type == chroma.TextWhitespace {
			continue
		}
		tokens = append(tokens, Token{Type: tok.Type.String(), Value: tok.Value})
	}
	return tokens
}

// renderTokens lists tokens one per line, type column first
func renderTokens(tokens []Token) string {
	var sb strings.Builder
	for i, tok := range tokens {
		if i == MaxTokenRows {
			fmt.Fprintf(&sb, "… %d more\n", len(tokens)-MaxTokenRows)
			break
		}
		value := strings.ReplaceAll(tok.Value, "\n", "\\n")
		sb.WriteString(TokenTypeStyle.Render(runewidth.FillRight(tok.Type, 24)))
		sb.WriteString(TokenValueStyle.Render(value))
		sb.WriteString("\n")
	}
	return sb.String()
}

// SourcePane shows the highlighted source and, optionally, its tokens
type SourcePane struct {
	viewport viewport.Model

	code       string
	fileType   string
	showTokens bool
	autoScroll bool
	rendered   bool
}

// NewSourcePane creates an empty source pane
func NewSourcePane() *SourcePane {
	vp := viewport.New()
	vp.SoftWrap = false
	return &SourcePane{viewport: vp}
}

// SetSize sets the outer size of the pane, borders included
func (p *SourcePane) SetSize(width, height int) {
	p.viewport.SetWidth(max(width-BorderSize, 1))
	p.viewport.SetHeight(max(height-BorderSize-1, 1))
}

// SetSource updates what the pane shows. With autoScroll the pane follows
// the end of the content, otherwise it returns to the top.
func (p *SourcePane) SetSource(code, fileType string, showTokens, autoScroll bool) {
	if p.rendered && code == p.code && fileType == p.fileType &&
		showTokens == p.showTokens && autoScroll == p.autoScroll {
		return
	}
	p.code, p.fileType, p.showTokens, p.autoScroll = code, fileType, showTokens, autoScroll
	p.rendered = true

	language := report.Language(fileType)
	content := HighlightCode(code, language)
	if showTokens {
		content = strings.TrimRight(content, "\n") + "\n\n" +
			PanelTitleStyle.Render("Tokens") + "\n" +
			renderTokens(Tokenize(code, language))
	}
	p.viewport.SetContent(content)

	if autoScroll {
		p.viewport.GotoBottom()
	} else {
		p.viewport.GotoTop()
	}
}

// Update scrolls the pane
func (p *SourcePane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// View renders the pane with a title naming the file type
func (p *SourcePane) View() string {
	title := PanelTitleStyle.Render("input." + p.fileType)
	return PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, p.viewport.View()))
}
