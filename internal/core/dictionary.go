package core

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	iso "github.com/barbashov/iso639-3"
	"github.com/klauspost/compress/gzip"
)

// Dictionary maps a source token to the set of target tokens it has been
// seen translated as. Multiplicities are not tracked, only presence.
type Dictionary struct {
	entries map[string]map[string]struct{}
}

// Has reports whether (src, trg) is a known translation pair.
func (d *Dictionary) Has(src, trg string) bool {
	if d == nil {
		return false
	}
	targets, ok := d.entries[src]
	if !ok {
		return false
	}
	_, ok = targets[trg]
	return ok
}

// LoadDictionary reads a dictionary file, UTF-8, one entry per line: either
// two whitespace-separated tokens (src, trg) or six whitespace-separated
// fields where source/target are fields 3 and 4. Transparently
// gzip-decompresses when the file is gzip-compressed, regardless of
// filename suffix. Loading the same file twice is idempotent because the
// result is a fresh value each time; callers hold it read-only thereafter.
func LoadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newErr(InputError, err, "opening dictionary %q", path)
	}
	defer f.Close()

	r, err := maybeGunzip(f)
	if err != nil {
		return nil, newErr(InputError, err, "reading dictionary %q", path)
	}

	d := &Dictionary{entries: make(map[string]map[string]struct{})}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		var src, trg string
		switch {
		case len(fields) == 2:
			src, trg = fields[0], fields[1]
		case len(fields) >= 6:
			src, trg = fields[2], fields[3]
		default:
			continue
		}
		d.add(src, trg)
	}
	if err := scanner.Err(); err != nil {
		return nil, newErr(InputError, err, "scanning dictionary %q", path)
	}
	return d, nil
}

func (d *Dictionary) add(src, trg string) {
	set, ok := d.entries[src]
	if !ok {
		set = make(map[string]struct{})
		d.entries[src] = set
	}
	set[trg] = struct{}{}
}

// maybeGunzip sniffs the gzip magic bytes (1f 8b) and wraps the reader
// transparently, grounded on the same container detection the subtitle
// reader (C2) performs.
func maybeGunzip(f *os.File) (io.Reader, error) {
	br := bufio.NewReader(f)
	head, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(head) == 2 && head[0] == 0x1f && head[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return gz, nil
	}
	return br, nil
}

// Alpha3 resolves an arbitrary language code/name to its ISO 639-3 alpha-3
// form. Only the single lookup is needed here: a dictionary directory key,
// not a subtitle-track preference ranking.
func Alpha3(code string) string {
	lang := iso.FromAnyCode(code)
	if lang == nil || lang.Part3 == "" {
		return code
	}
	return lang.Part3
}

// DictionaryPath builds "{shareDir}/{src3}-{trg3}", trying the
// reverse direction if the forward file is absent. It returns the path
// that exists and whether the pair is reversed relative to (src, trg).
func DictionaryPath(shareDir, src, trg string) (path string, reversed bool, ok bool) {
	src3, trg3 := Alpha3(src), Alpha3(trg)
	forward := filepath.Join(shareDir, src3+"-"+trg3)
	if p, ok := resolveFile(forward); ok {
		return p, false, true
	}
	backward := filepath.Join(shareDir, trg3+"-"+src3)
	if p, ok := resolveFile(backward); ok {
		return p, true, true
	}
	return "", false, false
}

// resolveFile reports the path that actually exists on disk for a
// dictionary base name, trying the bare name first and then the
// gzip-compressed variant.
func resolveFile(path string) (string, bool) {
	if _, err := os.Stat(path); err == nil {
		return path, true
	}
	if _, err := os.Stat(path + ".gz"); err == nil {
		return path + ".gz", true
	}
	return "", false
}

// WordFreq is a per-document token->count table, used to down-weight
// identical-run matches dominated by high-frequency tokens when enabled.
type WordFreq map[string]int

// BuildWordFreq computes the frequency table for a document's tokens.
func BuildWordFreq(doc *Document) WordFreq {
	wf := make(WordFreq)
	for _, s := range doc.Sentences {
		for _, t := range s.Tokens {
			wf[t]++
		}
	}
	return wf
}
