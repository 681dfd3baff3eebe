// Package rle decodes Life patterns in the run-length encoded text format and
// streams the live cells it finds into a Placer.
package rle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sparse-life/pkg/life"
)

// Placer receives each live cell of a pattern, relative to the pattern's
// upper-left corner.
type Placer interface {
	MakeCellAlive(c life.Coord)
}

// Header carries the metadata that precedes a pattern body.
type Header struct {
	Name     string
	Author   string
	Comments []string
	Width    int64
	Height   int64
	Rule     string
}

var (
	// ErrMissingHeader is returned when input ends before an "x = ..., y = ..." line.
	ErrMissingHeader = errors.New("rle: missing size header")
	// ErrUnsupportedRule is returned for any rule other than B3/S23.
	ErrUnsupportedRule = errors.New("rle: unsupported rule")
)

// SyntaxError reports malformed pattern text.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("rle: line %d: %s", e.Line, e.Msg)
}

const (
	// maxRun bounds a single run count.
	maxRun = 1 << 30
	// maxLine bounds a single line of pattern text.
	maxLine = 64 << 20
)

// DecodeString decodes a pattern held in memory.
func DecodeString(s string, p Placer) (Header, error) {
	return Decode(strings.NewReader(s), p)
}

// Decode reads a pattern from r and reports its live cells to p as they are
// discovered. Text after the terminating '!' is ignored.
func Decode(r io.Reader, p Placer) (Header, error) {
	var h Header
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	body := bodyDecoder{placer: p}
	headerSeen := false
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "#") {
			if !headerSeen {
				h.addComment(text)
			}
			continue
		}
		if !headerSeen {
			if !strings.Contains(text, "=") {
				return h, fmt.Errorf("%w before line %d", ErrMissingHeader, line)
			}
			if err := h.parseSize(text, line); err != nil {
				return h, err
			}
			headerSeen = true
			continue
		}
		done, err := body.feed(text, line)
		if err != nil {
			return h, err
		}
		if done {
			return h, nil
		}
	}
	if err := sc.Err(); err != nil {
		return h, fmt.Errorf("rle: read pattern: %w", err)
	}
	if !headerSeen {
		return h, ErrMissingHeader
	}
	return h, nil
}

func (h *Header) addComment(text string) {
	if len(text) < 2 {
		return
	}
	value := strings.TrimSpace(text[2:])
	switch text[1] {
	case 'N':
		h.Name = value
	case 'O':
		h.Author = value
	case 'C', 'c':
		h.Comments = append(h.Comments, value)
	}
}

func (h *Header) parseSize(text string, line int) error {
	var sawX, sawY bool
	for _, field := range strings.Split(text, ",") {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return &SyntaxError{Line: line, Msg: fmt.Sprintf("malformed header field %q", strings.TrimSpace(field))}
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		switch key {
		case "x", "y":
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil || n < 0 {
				return &SyntaxError{Line: line, Msg: fmt.Sprintf("invalid %s dimension %q", key, value)}
			}
			if key == "x" {
				h.Width, sawX = n, true
			} else {
				h.Height, sawY = n, true
			}
		case "rule":
			if !isConway(value) {
				return fmt.Errorf("%w %q", ErrUnsupportedRule, value)
			}
			h.Rule = value
		}
	}
	if !sawX || !sawY {
		return &SyntaxError{Line: line, Msg: "header must declare both x and y"}
	}
	return nil
}

func isConway(rule string) bool {
	switch strings.ToLower(strings.ReplaceAll(rule, " ", "")) {
	case "b3/s23", "b3s23", "s23/b3", "23/3":
		return true
	}
	return false
}

// bodyDecoder keeps the cursor and any pending run count across lines.
type bodyDecoder struct {
	placer Placer
	x, y   int64
	run    int64
}

func (d *bodyDecoder) take() int64 {
	n := d.run
	d.run = 0
	if n == 0 {
		return 1
	}
	return n
}

func (d *bodyDecoder) feed(text string, line int) (bool, error) {
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			d.run = d.run*10 + int64(r-'0')
			if d.run > maxRun {
				return false, &SyntaxError{Line: line, Msg: "run count too large"}
			}
		case r == 'b' || r == '.':
			d.x += d.take()
		case r == '$':
			d.y += d.take()
			d.x = 0
		case r == '!':
			return true, nil
		case r == ' ' || r == '\t':
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			n := d.take()
			for i := int64(0); i < n; i++ {
				d.placer.MakeCellAlive(life.Coord{X: d.x + i, Y: d.y})
			}
			d.x += n
		default:
			return false, &SyntaxError{Line: line, Msg: fmt.Sprintf("unexpected character %q", r)}
		}
	}
	return false, nil
}
