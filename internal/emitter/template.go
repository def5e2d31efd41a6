package emitter

import (
	"strings"

	"github.com/nguyentantai21042004/dramadeck/internal/config"
	"github.com/nguyentantai21042004/dramadeck/internal/dialogue"
)

// Placeholders substituted in Template.Frame.
const (
	NativePlaceholder  = "%NATIVE%"
	ForeignPlaceholder = "%FOREIGN%"
)

// Template holds the literal markup of a text document. Prologue, each unit
// and Epilogue are written on their own line.
type Template struct {
	Prologue        string
	Frame           string
	FrameEnd        string
	Epilogue        string
	ColumnSeparator string
	EndOfRow        string
}

// BeamerTemplate returns a beamer deck with a two-column tabularx table per
// frame and the speaker names as frame title and subtitle.
func BeamerTemplate() Template {
	return Template{
		Prologue:        "\\documentclass{beamer}\n\\usepackage[UTF8,noindent]{ctexcap}\n\\usepackage{tabularx}\n\\begin{document}\n",
		Frame:           "\\begin{frame}{" + NativePlaceholder + "}{" + ForeignPlaceholder + "}\n\\begin{tabularx}{\\textwidth}{XX}\n",
		FrameEnd:        "\\end{tabularx}\n\\end{frame}",
		Epilogue:        "\\end{document}",
		ColumnSeparator: "&",
		EndOfRow:        "\\\\",
	}
}

// Override replaces the literals set in cfg.
func (t Template) Override(cfg config.TemplateConfig) Template {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&t.Prologue, cfg.Prologue)
	set(&t.Frame, cfg.Frame)
	set(&t.FrameEnd, cfg.FrameEnd)
	set(&t.Epilogue, cfg.Epilogue)
	set(&t.ColumnSeparator, cfg.ColumnSeparator)
	set(&t.EndOfRow, cfg.EndOfRow)
	return t
}

// Unit renders one frame. Names are substituted in a single pass, so a name
// containing a placeholder is left as written.
func (t Template) Unit(nativeName, foreignName, body string) string {
	var b strings.Builder
	r := strings.NewReplacer(NativePlaceholder, nativeName, ForeignPlaceholder, foreignName)
	b.WriteString(r.Replace(t.Frame))
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(t.FrameEnd)
	return b.String()
}

// Row joins a chunk pair into one table row.
func (t Template) Row(nativeChunk, foreignChunk string) string {
	return nativeChunk + t.ColumnSeparator + foreignChunk + t.EndOfRow
}

// Render produces the whole document.
func (t Template) Render(turns []dialogue.Turn) (string, error) {
	var b strings.Builder
	b.WriteString(t.Prologue)
	b.WriteString("\n")

	err := eachUnit(turns, func(nativeName, foreignName, nativeChunk, foreignChunk string) error {
		b.WriteString(t.Unit(nativeName, foreignName, t.Row(nativeChunk, foreignChunk)))
		b.WriteString("\n")
		return nil
	})
	if err != nil {
		return "", err
	}

	b.WriteString(t.Epilogue)
	b.WriteString("\n")
	return b.String(), nil
}
