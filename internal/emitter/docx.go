package emitter

import (
	"context"
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/dramadeck/internal/dialogue"
)

const (
	fontName    = "Times New Roman"
	fontSize    = 13
	headingSize = 15
)

// Emit writes a handout: per unit a bold speaker heading followed by the
// native and the foreign chunk as separate paragraphs.
func (e *implDocx) Emit(ctx context.Context, turns []dialogue.Turn, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	units := 0
	err = eachUnit(turns, func(nativeName, foreignName, nativeChunk, foreignChunk string) error {
		addStyledRun(doc.AddParagraph(""), nativeName+" / "+foreignName, true, headingSize)
		addStyledRun(doc.AddParagraph(""), nativeChunk, false, fontSize)
		addStyledRun(doc.AddParagraph(""), foreignChunk, false, fontSize)
		doc.AddParagraph("")
		units++
		return nil
	})
	if err != nil {
		return fmt.Errorf("render handout: %w", err)
	}

	err = replaceFile(ctx, outputPath, func(tmpPath string) error {
		if err := doc.SaveTo(tmpPath); err != nil {
			return fmt.Errorf("save handout: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	e.logger.Info(ctx, "Handout written: %s (%d units)", outputPath, units)
	return nil
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
