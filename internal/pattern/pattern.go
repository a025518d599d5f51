// Package pattern implements the naming pattern engine: an ordered
// sequence of literal and placeholder tokens that compiles to a filename
// body given a value map.
package pattern

import (
	"regexp"
	"strings"

	"bulkrename/internal/errors"
	"bulkrename/internal/fsutil"
)

// Kind distinguishes literal text from named placeholders.
type Kind int

const (
	Literal Kind = iota
	Placeholder
)

// Placeholder names accepted inside {...}. Anything else is rejected.
const (
	PhPrefix = "prefix"
	PhName   = "name"
	PhSuffix = "suffix"
	PhNum    = "num"
	PhDate   = "date"
)

var knownPlaceholders = map[string]bool{
	PhPrefix: true,
	PhName:   true,
	PhSuffix: true,
	PhNum:    true,
	PhDate:   true,
}

var (
	placeholderRe = regexp.MustCompile(`\{[^}]+\}`)
	separatorRe   = regexp.MustCompile(`[-_ ]+`)
)

// literalPolicy checks literal tokens for illegal filename characters
// only; reserved-name and trailing-dot rules apply to whole filenames,
// not to fragments of one.
var literalPolicy = fsutil.NamePolicy{}

// Token is one element of a pattern. For placeholders Text holds the bare
// name (no braces); for literals it holds the text verbatim.
type Token struct {
	Kind Kind
	Text string
}

// String renders the token back to its source form.
func (t Token) String() string {
	if t.Kind == Placeholder {
		return "{" + t.Text + "}"
	}
	return t.Text
}

// NewToken builds a token from its source form. A {...}-shaped value must
// name a known placeholder; anything else is literal text, which must be
// non-empty and free of illegal filename characters.
func NewToken(s string) (Token, error) {
	if s == "" {
		return Token{}, errors.NewPatternError("pattern element cannot be empty", "", nil)
	}
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		name := s[1 : len(s)-1]
		if !knownPlaceholders[name] {
			return Token{}, errors.NewPatternError("unknown placeholder", s, nil)
		}
		return Token{Kind: Placeholder, Text: name}, nil
	}
	if !literalPolicy.LegalName(s) {
		return Token{}, errors.NewPatternError("literal contains invalid characters", s, nil)
	}
	return Token{Kind: Literal, Text: s}, nil
}

// Sequence is an ordered pattern. Token order is slice position.
type Sequence struct {
	tokens []Token
}

// Default returns the default pattern {prefix}{name}{suffix}{num}{date}.
func Default() *Sequence {
	s, _ := FromList([]string{"{prefix}", "{name}", "{suffix}", "{num}", "{date}"})
	return s
}

// FromList builds a sequence from element source strings.
func FromList(elems []string) (*Sequence, error) {
	seq := &Sequence{tokens: make([]Token, 0, len(elems))}
	for _, elem := range elems {
		tok, err := NewToken(elem)
		if err != nil {
			return nil, err
		}
		seq.tokens = append(seq.tokens, tok)
	}
	return seq, nil
}

// Parse splits a pattern string on {...} boundaries in a single
// left-to-right scan, alternating literal and placeholder runs.
func Parse(s string) (*Sequence, error) {
	var elems []string
	last := 0
	for _, loc := range placeholderRe.FindAllStringIndex(s, -1) {
		if loc[0] > last {
			elems = append(elems, s[last:loc[0]])
		}
		elems = append(elems, s[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(s) {
		elems = append(elems, s[last:])
	}
	return FromList(elems)
}

// Tokens returns a copy of the token list.
func (s *Sequence) Tokens() []Token {
	out := make([]Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// List returns the elements in source form.
func (s *Sequence) List() []string {
	out := make([]string, len(s.tokens))
	for i, t := range s.tokens {
		out[i] = t.String()
	}
	return out
}

// String returns the whole pattern in source form.
func (s *Sequence) String() string {
	return strings.Join(s.List(), "")
}

// Len returns the number of tokens.
func (s *Sequence) Len() int {
	return len(s.tokens)
}

// At returns the token at position i.
func (s *Sequence) At(i int) (Token, bool) {
	if i < 0 || i >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[i], true
}

// Insert adds an element at pos; pos past the end appends.
func (s *Sequence) Insert(elem string, pos int) error {
	tok, err := NewToken(elem)
	if err != nil {
		return err
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(s.tokens) {
		pos = len(s.tokens)
	}
	s.tokens = append(s.tokens, Token{})
	copy(s.tokens[pos+1:], s.tokens[pos:])
	s.tokens[pos] = tok
	return nil
}

// Remove deletes the token at pos.
func (s *Sequence) Remove(pos int) error {
	if pos < 0 || pos >= len(s.tokens) {
		return errors.Newf("pattern position out of range: %d", pos)
	}
	s.tokens = append(s.tokens[:pos], s.tokens[pos+1:]...)
	return nil
}

// Move relocates the token at from to position to.
func (s *Sequence) Move(from, to int) error {
	if from < 0 || from >= len(s.tokens) {
		return errors.Newf("pattern position out of range: %d", from)
	}
	if to < 0 || to >= len(s.tokens) {
		return errors.Newf("pattern position out of range: %d", to)
	}
	tok := s.tokens[from]
	s.tokens = append(s.tokens[:from], s.tokens[from+1:]...)
	s.tokens = append(s.tokens, Token{})
	copy(s.tokens[to+1:], s.tokens[to:])
	s.tokens[to] = tok
	return nil
}

// Clear removes every token.
func (s *Sequence) Clear() {
	s.tokens = nil
}

// Validate checks that the sequence is non-empty and contains at least
// one placeholder or one literal with non-whitespace content.
func (s *Sequence) Validate() error {
	if len(s.tokens) == 0 {
		return errors.NewPatternError("pattern cannot be empty", "", nil)
	}
	for _, t := range s.tokens {
		if t.Kind == Placeholder || strings.TrimSpace(t.Text) != "" {
			return nil
		}
	}
	return errors.NewPatternError("pattern must contain at least one placeholder or text", "", nil)
}

// Render compiles the sequence into a filename. Literal tokens emit their
// text verbatim; placeholder tokens emit their value only when non-empty.
// Runs of the separator characters -, _ and space collapse to their first
// character, the result is trimmed of leading and trailing separators,
// and the extension (leading dot normalized) is appended last. An empty
// result falls back to the original name, then to "unnamed".
func (s *Sequence) Render(values map[string]string, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	var b strings.Builder
	for _, t := range s.tokens {
		if t.Kind == Placeholder {
			if v := values[t.Text]; v != "" {
				b.WriteString(v)
			}
			continue
		}
		b.WriteString(t.Text)
	}

	name := separatorRe.ReplaceAllStringFunc(b.String(), func(m string) string {
		return m[:1]
	})
	name = strings.Trim(name, "-_ ")

	if name == "" {
		name = values[PhName]
		if name == "" {
			name = "unnamed"
		}
	}
	return name + ext
}
