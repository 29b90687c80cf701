// Package response decodes the server's reply envelope
// (`result:<ok|err>[response{<data>,<meta>,},];`, spec §4.6) into a
// Journal carrying a CollectionView and a Meta summary.
package response

import (
	"strings"

	"github.com/sqldef/annadriver/internal/split"
)

const (
	dataTag = "s|data|:"
	metaTag = "s|meta|:"
)

// envelope is the raw result of splitting a reply into its result word,
// data section text, and meta section text.
type envelope struct {
	ok   bool
	data string
	meta string
}

// splitEnvelope locates the four landmarks of spec §4.6 without relying on
// the literal 3-character substring ",}]" (spec's own worked example in
// §8 scenario 6 does not contain that exact substring — its tail reads
// "},]" — so the boundary has to come from bracket depth, not a string
// search, which is also what open question (c) asks for).
func splitEnvelope(raw string) (envelope, error) {
	bracketIdx := strings.IndexByte(raw, '[')
	if bracketIdx < 0 {
		return envelope{}, newDecodeError(raw, "no '[' found after result word")
	}
	resultWord := raw[:bracketIdx]
	ok := strings.Contains(resultWord, "ok")

	const responseOpen = "response{"
	respIdx := strings.Index(raw, responseOpen)
	if respIdx < bracketIdx {
		return envelope{}, newDecodeError(raw, "no 'response{' wrapper found")
	}
	braceIdx := respIdx + len(responseOpen) - 1 // index of the '{' itself
	closeIdx := split.MatchingClose(raw, braceIdx)
	if closeIdx < 0 {
		return envelope{}, newDecodeError(raw, "'response{' is never closed")
	}
	content := raw[braceIdx+1 : closeIdx]

	fields := split.TopLevel(content, ',')
	e := envelope{ok: ok}
	haveData, haveMeta := false, false
	for _, f := range fields {
		switch {
		case strings.HasPrefix(f, dataTag):
			e.data = f[len(dataTag):]
			haveData = true
		case strings.HasPrefix(f, metaTag):
			e.meta = f[len(metaTag):]
			haveMeta = true
		}
	}
	if !haveData {
		return envelope{}, newDecodeError(raw, "no s|data|: field found in response{}")
	}
	if !haveMeta {
		return envelope{}, newDecodeError(raw, "no s|meta|: field found in response{}")
	}
	return e, nil
}
