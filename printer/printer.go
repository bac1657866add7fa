package printer

import (
	"fmt"
	"strings"

	"github.com/dball/conscell/cons"
	"github.com/dball/conscell/types"
)

// Config controls printing behavior
type Config struct {
	Readably bool
	// MaxSeqLength truncates chains longer than this; zero prints everything
	MaxSeqLength int
}

// PrintStr prints values. A chain prints as its elements separated by spaces,
// with nested descenders bracketed and a dotted tail after " . ".
func PrintStr(config Config, value types.Value) string {
	switch v := value.(type) {
	case nil:
		return ""
	case *cons.Cell:
		return printChain(config, v)
	case types.String:
		return printString(config, v)
	case *types.Atom:
		return "(atom " + PrintStr(config, v.Value) + ")"
	case error:
		return printString(config, types.String(v.Error()))
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", value)
	}
}

// PrintForm prints a value as it would appear in a slot of type t
func PrintForm(config Config, value types.Value, t *cons.SlotType) string {
	if t.Equal(cons.Empty) {
		return ""
	}
	if t.MarksDescender() {
		return t.Open() + PrintStr(config, value) + t.Close()
	}
	return PrintStr(config, value)
}

func printChain(config Config, c *cons.Cell) string {
	var sb strings.Builder
	i := 0
	write := func(s string) {
		if s == "" {
			return
		}
		if sb.Len() > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(s)
	}
	for current := c; current != nil; current = current.Next() {
		if config.MaxSeqLength > 0 && i == config.MaxSeqLength {
			write("...")
			break
		}
		i++
		write(PrintForm(config, current.Car(), current.CarType()))
		if current.IsLast() && !current.CdrType().Equal(cons.Empty) {
			write(".")
			write(PrintForm(config, current.Cdr(), current.CdrType()))
		}
	}
	return sb.String()
}

// When print_readably is true, doublequotes, newlines, and backslashes are translated into their printed representations (the reverse of the reader)
func printString(config Config, s types.String) string {
	if !config.Readably {
		return string(s)
	}
	var sb strings.Builder
	sb.WriteRune('"')
	runes := []rune(s)
	for _, r := range runes {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteRune('"')
	return sb.String()
}
