// Command stflsh is a tiny example host: it reads a widget-tree
// description, builds the tree purely through the construction API
// (NewWidget/AppendChild/Set/SetName), and drives it with RunOneStep,
// echoing each event to stderr until the user presses q.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/chazu/stfl"
	_ "github.com/chazu/stfl/widgets"
)

func main() {
	path := flag.String("f", "", "path to a widget-tree script (default: stdin)")
	dump := flag.Bool("dump", false, "print the parsed tree and exit instead of running it")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *path != "" {
		f, err := os.Open(*path)
		if err != nil {
			log.Fatalf("stflsh: %v", err)
		}
		defer f.Close()
		r = f
	}

	root, err := parseTree(r)
	if err != nil {
		log.Fatalf("stflsh: %v", err)
	}
	if root == nil {
		log.Fatalf("stflsh: empty widget-tree script")
	}

	if *dump {
		root.Dump(os.Stdout, 0)
		return
	}

	form := stfl.NewForm(root)
	defer form.Free()

	for {
		stfl.RunOneStep(form, stfl.TimeoutBlock)
		ev, ok := form.CurrentEvent()
		if !ok {
			continue
		}
		fmt.Fprintf(os.Stderr, "event: %s\n", ev)
		if ev == "q" {
			form.Reset()
			return
		}
	}
}

// parseTree reads an indentation-based widget-tree script:
//
//	vbox
//	  label name=greeting text="Hello, world"
//	  hbox .expand=vh
//	    !button name=ok text=OK
//	    button name=cancel text=Cancel
//
// Each line is one widget: its type name (optionally "!"-prefixed for
// setfocus), then space-separated key=value attribute pairs (values
// may be double-quoted to contain spaces). Indentation by 2 spaces
// nests a line under the nearest shallower-indented line. Blank lines
// and lines whose first non-space character is '#' are ignored.
func parseTree(r io.Reader) (*stfl.Widget, error) {
	type frame struct {
		indent int
		widget *stfl.Widget
	}

	var stack []frame
	var root *stfl.Widget

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		trimmed := strings.TrimLeft(raw, " ")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		indent := len(raw) - len(trimmed)

		w, name, attrs, err := parseLine(trimmed)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if w == nil {
			return nil, fmt.Errorf("line %d: unknown widget type", lineNo)
		}
		if name != "" {
			w.SetName(name)
		}
		for _, kv := range attrs {
			w.Set(kv[0], kv[1])
		}

		for len(stack) > 0 && stack[len(stack)-1].indent >= indent {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			if root != nil {
				return nil, fmt.Errorf("line %d: a second root-level widget", lineNo)
			}
			root = w
		} else {
			stack[len(stack)-1].widget.AppendChild(w)
		}
		stack = append(stack, frame{indent: indent, widget: w})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return root, nil
}

// parseLine splits one script line into its widget type (creating the
// widget via stfl.NewWidget), an optional name=... attribute (also
// returned separately so it can be applied via SetName), and the
// remaining key=value attributes in source order.
func parseLine(line string) (w *stfl.Widget, name string, attrs [][2]string, err error) {
	tokens, err := tokenize(line)
	if err != nil {
		return nil, "", nil, err
	}
	if len(tokens) == 0 {
		return nil, "", nil, fmt.Errorf("empty line")
	}
	w = stfl.NewWidget(tokens[0])
	for _, tok := range tokens[1:] {
		key, value, ok := strings.Cut(tok, "=")
		if !ok {
			return w, name, attrs, fmt.Errorf("attribute %q missing '='", tok)
		}
		if key == "name" {
			name = value
			continue
		}
		attrs = append(attrs, [2]string{key, value})
	}
	return w, name, attrs, nil
}

// tokenize splits line on unquoted whitespace, honoring double-quoted
// values so "text=\"hello world\"" survives as one token.
func tokenize(line string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	inQuotes := false
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == ' ' && !inQuotes:
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	if inQuotes {
		return nil, fmt.Errorf("unterminated quoted value")
	}
	flush()
	return tokens, nil
}
