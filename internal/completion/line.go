package completion

import (
	"fmt"
	"strings"
	"unicode"

	"mvdan.cc/sh/v3/syntax"
)

// Element is one word of a partially typed command line.
type Element struct {
	Value string
	// Bare is true when the word is a single unquoted literal with no
	// expansions.
	Bare bool
}

// ParseLine splits a partially typed command line into its elements and
// returns the word under the cursor, which is assumed to be at the end of the
// line. A line ending in whitespace has an empty word under the cursor.
func ParseLine(line string) ([]Element, string, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(line), "")
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse command line: %w", err)
	}
	if len(file.Stmts) == 0 {
		return nil, "", nil
	}

	call, err := lastCall(file.Stmts[len(file.Stmts)-1])
	if err != nil {
		return nil, "", err
	}

	elements := make([]Element, 0, len(call.Args))
	for _, word := range call.Args {
		value, err := wordValue(word)
		if err != nil {
			return nil, "", err
		}
		elements = append(elements, Element{
			Value: value,
			Bare:  isBare(word),
		})
	}

	wordToComplete := ""
	if len(elements) > 0 && !endsInSpace(line) {
		wordToComplete = elements[len(elements)-1].Value
	}

	return elements, wordToComplete, nil
}

// CommandPath computes the command path the user is currently inside. It
// starts from binName and appends each element after the first for as long
// as the element is a bare word that is neither an option nor the word under
// the cursor.
func CommandPath(binName string, elements []Element, wordToComplete string) string {
	path := []string{binName}
	for i := 1; i < len(elements); i++ {
		element := elements[i]
		if !element.Bare ||
			strings.HasPrefix(element.Value, "-") ||
			strings.EqualFold(element.Value, wordToComplete) {
			break
		}
		path = append(path, element.Value)
	}
	return strings.Join(path, PathSeparator)
}

func lastCall(stmt *syntax.Stmt) (*syntax.CallExpr, error) {
	switch cmd := stmt.Cmd.(type) {
	case *syntax.CallExpr:
		return cmd, nil
	case *syntax.BinaryCmd:
		return lastCall(cmd.Y)
	case nil:
		return &syntax.CallExpr{}, nil
	default:
		return nil, fmt.Errorf("unsupported command line: %T", cmd)
	}
}

func isBare(word *syntax.Word) bool {
	if len(word.Parts) != 1 {
		return false
	}
	_, ok := word.Parts[0].(*syntax.Lit)
	return ok
}

func wordValue(word *syntax.Word) (string, error) {
	var sb strings.Builder
	for _, part := range word.Parts {
		if !appendPartValue(&sb, part) {
			sb.Reset()
			if err := syntax.NewPrinter().Print(&sb, word); err != nil {
				return "", fmt.Errorf("failed to print word: %w", err)
			}
			return sb.String(), nil
		}
	}
	return sb.String(), nil
}

// appendPartValue writes the literal value of part and reports whether the
// part had one.
func appendPartValue(sb *strings.Builder, part syntax.WordPart) bool {
	switch p := part.(type) {
	case *syntax.Lit:
		sb.WriteString(p.Value)
	case *syntax.SglQuoted:
		sb.WriteString(p.Value)
	case *syntax.DblQuoted:
		for _, inner := range p.Parts {
			if !appendPartValue(sb, inner) {
				return false
			}
		}
	default:
		return false
	}
	return true
}

func endsInSpace(line string) bool {
	if line == "" {
		return true
	}
	return unicode.IsSpace(rune(line[len(line)-1]))
}
