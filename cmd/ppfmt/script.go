package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jcorbin/pp/pp"
)

// runScript reads one directive per line from sc and drives p accordingly.
// Recognized directives:
//
//	hbox                 open_hbox
//	vbox OFFSET          open_vbox
//	hvbox OFFSET         open_hvbox
//	hovbox OFFSET        open_hovbox
//	box OFFSET           open_box
//	end                  close_box
//	text WORD|"quoted"   print_string
//	space                print_space
//	cut                  print_cut
//	break WIDTH OFFSET   print_break
//	nl                   print_force_newline
//	flush                print_flush
//
// Blank lines and lines starting with '#' are ignored.
func runScript(p *pp.Printer, sc *bufio.Scanner) error {
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args := scanLineArgs(line)
		if err := runDirective(p, args); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return sc.Err()
}

func runDirective(p *pp.Printer, args []string) error {
	if len(args) == 0 {
		return nil
	}
	op, args := args[0], args[1:]
	switch op {
	case "hbox":
		p.OpenHbox()
	case "vbox":
		n, err := arg1(args)
		if err != nil {
			return err
		}
		p.OpenVbox(n)
	case "hvbox":
		n, err := arg1(args)
		if err != nil {
			return err
		}
		p.OpenHvbox(n)
	case "hovbox":
		n, err := arg1(args)
		if err != nil {
			return err
		}
		p.OpenHovbox(n)
	case "box":
		n, err := arg1(args)
		if err != nil {
			return err
		}
		p.OpenBox(n)
	case "end":
		p.CloseBox()
	case "text":
		if len(args) != 1 {
			return fmt.Errorf("text: want exactly one word or quoted string, got %d", len(args))
		}
		p.PrintString(unquoteArg(args[0]))
	case "space":
		p.PrintSpace()
	case "cut":
		p.PrintCut()
	case "break":
		if len(args) != 2 {
			return fmt.Errorf("break: want WIDTH OFFSET, got %d args", len(args))
		}
		w, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("break: bad width: %w", err)
		}
		o, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("break: bad offset: %w", err)
		}
		p.PrintBreak(w, o)
	case "nl":
		p.PrintForceNewline()
	case "flush":
		p.PrintFlush()
	default:
		return fmt.Errorf("unrecognized directive %q", op)
	}
	return nil
}

func arg1(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("want exactly one integer argument, got %d", len(args))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("bad integer argument %q: %w", args[0], err)
	}
	return n, nil
}

// scanLineArgs splits line into words, treating a leading quote as starting
// a run that extends to the matching close quote (so a quoted text operand
// may contain spaces).
func scanLineArgs(line string) []string {
	var args []string
	sc := bufio.NewScanner(strings.NewReader(line))
	sc.Split(scanArgs)
	for sc.Scan() {
		args = append(args, sc.Text())
	}
	return args
}

func scanArgs(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	var r rune
	for width := 0; start < len(data); start += width {
		r, width = utf8.DecodeRune(data[start:])
		if !unicode.IsSpace(r) {
			break
		}
	}

	if r == '"' || r == '\'' {
		q := r
		esc := false
		for width, i := 0, start+1; i < len(data); i += width {
			r, width = utf8.DecodeRune(data[i:])
			if r == '\\' {
				esc = true
			} else if !esc && r == q {
				return i + width, data[start : i+width], nil
			} else {
				esc = false
			}
		}
	} else {
		for width, i := 0, start; i < len(data); i += width {
			r, width = utf8.DecodeRune(data[i:])
			if unicode.IsSpace(r) {
				return i + width, data[start:i], nil
			}
		}
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

func unquoteArg(arg string) string {
	if len(arg) < 2 || (arg[0] != '"' && arg[0] != '\'') {
		return arg
	}
	q := arg[0]
	arg = arg[1:]
	var buf strings.Builder
	buf.Grow(len(arg))
	for len(arg) > 0 && arg[0] != q {
		r, _, tail, err := strconv.UnquoteChar(arg, q)
		if err != nil {
			buf.WriteString(arg)
			break
		}
		buf.WriteRune(r)
		arg = tail
	}
	return buf.String()
}
