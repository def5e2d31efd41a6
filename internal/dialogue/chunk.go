package dialogue

import (
	"strings"
	"unicode/utf8"
)

// closingPunctuation marks clauses that need no terminal appended.
const closingPunctuation = "，。！？；.,!?—"

// ChunkRule bounds the chunks of one language.
type ChunkRule struct {
	// MaxChars is a soft limit in runes: a chunk is closed once it reaches
	// the limit, so the last clause may push it past.
	MaxChars int
	// Terminal is appended to clauses without closing punctuation.
	Terminal string
}

var (
	NativeRule  = ChunkRule{MaxChars: 30, Terminal: "。"}
	ForeignRule = ChunkRule{MaxChars: 200, Terminal: ". "}
)

// Chunk re-splits paragraph lines into chunks. Lines are cut into clauses at
// full stops only ('。' and '.'), and clauses are packed greedily per line.
// Every line yields at least one chunk, and no lines yield one empty chunk.
func Chunk(lines []string, rule ChunkRule) []string {
	if len(lines) == 0 {
		return []string{""}
	}

	var chunks []string
	for _, line := range lines {
		chunks = append(chunks, chunkLine(line, rule)...)
	}
	return chunks
}

// Chunked returns a copy of the turn with both languages chunked.
func (t Turn) Chunked(native, foreign ChunkRule) Turn {
	return Turn{
		Speaker: t.Speaker,
		Native:  Chunk(t.Native, native),
		Foreign: Chunk(t.Foreign, foreign),
	}
}

func chunkLine(line string, rule ChunkRule) []string {
	clauses := splitClauses(line)

	var (
		chunks []string
		buf    strings.Builder
		length int
	)
	for len(clauses) > 0 {
		if length > 0 && length >= rule.MaxChars {
			chunks = append(chunks, buf.String())
			buf.Reset()
			length = 0
			continue
		}
		clause := terminate(clauses[0], rule.Terminal)
		clauses = clauses[1:]
		buf.WriteString(clause)
		length += utf8.RuneCountInString(clause)
	}

	return append(chunks, buf.String())
}

func splitClauses(line string) []string {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == '。' || r == '.'
	})

	clauses := fields[:0]
	for _, f := range fields {
		if c := strings.Trim(f, " "); c != "" {
			clauses = append(clauses, c)
		}
	}
	return clauses
}

func terminate(clause, terminal string) string {
	last, _ := utf8.DecodeLastRuneInString(clause)
	if strings.ContainsRune(closingPunctuation, last) {
		return clause + " "
	}
	return clause + terminal
}
