package reader

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/dball/conscell/cons"
	"github.com/dball/conscell/types"
)

var tokenRegexp = regexp.MustCompile(`[\s,]*(~@|[\[\]{}()'` + "`" +
	`~^@]|"(?:\\.|[^\\"])*"?|;.*|[^\s\[\]{}('"` + "`" +
	`,;)]*)`)

var integerRegexp = regexp.MustCompile(`^-?\d+$`)

// Reader reads tokens into cells of one variant
type Reader struct {
	tokens  []string
	offset  int
	variant *cons.Variant
}

// Error is a reader error
type Error struct {
	Message string
	Err     error
}

func (err Error) Unwrap() error { return err.Err }

func (err Error) String() string {
	return fmt.Sprintf("reader error: %v: %v", err.Message, err.Err)
}
func (err Error) Error() string {
	return err.String()
}

func (reader *Reader) peek() *string {
	if reader.offset == len(reader.tokens) {
		return nil
	}
	return &reader.tokens[reader.offset]
}

func (reader *Reader) next() *string {
	token := reader.peek()
	if token != nil {
		reader.offset++
	}
	return token
}

// tokenize drops comments and the empty tokens left by trailing whitespace
func tokenize(s string) []string {
	matches := tokenRegexp.FindAllStringSubmatch(s, -1)
	tokens := make([]string, 0, len(matches))
	for _, match := range matches {
		token := match[1]
		if token == "" || token[0] == ';' {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// ReadStr reads every form in s into a chain of v's cells, one form per car.
// Lists become nested cells under the descender type their bracket opens.
func ReadStr(v *cons.Variant, s string) (*cons.Cell, error) {
	reader := &Reader{tokens: tokenize(s), variant: v}
	if reader.peek() == nil {
		return nil, Error{"Unexpected end of input reading form", nil}
	}
	head := v.ConstructEmpty()
	tail := head
	for reader.peek() != nil {
		value, t, err := readForm(reader)
		if err != nil {
			return nil, err
		}
		tail = tail.Append(v.Construct(value, t, nil, nil))
	}
	return head, nil
}

// ReadOne reads a single form
func ReadOne(v *cons.Variant, s string) (types.Value, *cons.SlotType, error) {
	forms, err := ReadStr(v, s)
	if err != nil {
		return nil, nil, err
	}
	if !forms.IsLast() {
		return nil, nil, Error{"Expected a single form", nil}
	}
	return forms.Car(), forms.CarType(), nil
}

func readForm(reader *Reader) (types.Value, *cons.SlotType, error) {
	token := reader.peek()
	if token == nil {
		return nil, nil, Error{"Unexpected end of input reading form", nil}
	}
	registry := reader.variant.Types
	if t, found := registry.ByOpen(*token); found {
		reader.next()
		return readList(reader, t)
	}
	if _, found := registry.ByClose(*token); found {
		return nil, nil, Error{"Unbalanced " + *token, nil}
	}
	switch *token {
	case "'":
		return readQuotedForm(reader, "quote")
	case "`":
		return readQuotedForm(reader, "quasiquote")
	case "~":
		return readQuotedForm(reader, "unquote")
	case "~@":
		return readQuotedForm(reader, "splice-unquote")
	case "@":
		return readQuotedForm(reader, "deref")
	case "(", ")", "[", "]", "{", "}":
		return nil, nil, Error{"No slot type for bracket " + *token, nil}
	default:
		value, err := readAtom(reader)
		if err != nil {
			return nil, nil, err
		}
		return value, reader.variant.TypeOf(value), nil
	}
}

func readQuotedForm(reader *Reader, name string) (types.Value, *cons.SlotType, error) {
	reader.next()
	listType, found := reader.variant.Types.ByOpen("(")
	if !found {
		return nil, nil, Error{"No list type for quoted form: " + name, nil}
	}
	form, t, err := readForm(reader)
	if err != nil {
		return nil, nil, Error{"Unexpected end of quoted form: " + name, err}
	}
	v := reader.variant
	symbol := types.NewSymbol(name)
	quoted := v.Construct(symbol, v.TypeOf(symbol), nil, nil)
	quoted.Append(v.Construct(form, t, nil, nil))
	return quoted, listType, nil
}

func readList(reader *Reader, t *cons.SlotType) (types.Value, *cons.SlotType, error) {
	v := reader.variant
	head := v.ConstructEmpty()
	tail := head
	for {
		token := reader.peek()
		if token == nil {
			return nil, nil, Error{"Unexpected end of input reading list", nil}
		}
		switch *token {
		case t.Close():
			reader.next()
			return head, t, nil
		case ".":
			if head.IsEmpty() {
				return nil, nil, Error{"Dotted tail without a head", nil}
			}
			reader.next()
			value, vt, err := readForm(reader)
			if err != nil {
				return nil, nil, Error{"Error reading dotted tail", err}
			}
			tail.SetCdr(value, vt)
			if end := reader.next(); end == nil || *end != t.Close() {
				return nil, nil, Error{"Expected " + t.Close() + " after dotted tail", nil}
			}
			return head, t, nil
		}
		value, vt, err := readForm(reader)
		if err != nil {
			return nil, nil, Error{"Error reading list", err}
		}
		tail = tail.Append(v.Construct(value, vt, nil, nil))
	}
}

func readAtom(reader *Reader) (types.Value, error) {
	token := *reader.next()
	if integerRegexp.MatchString(token) {
		value, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, Error{"Unparseable integer", err}
		}
		return types.Integer(value), nil
	}
	runes := []rune(token)
	switch runes[0] {
	case '"':
		return parseString(runes)
	case ':':
		return types.NewKeyword(string(runes[1:])), nil
	default:
		switch token {
		case "true":
			return types.Boolean(true), nil
		case "false":
			return types.Boolean(false), nil
		case "nil":
			return types.Nil{}, nil
		default:
			return types.NewSymbol(token), nil
		}
	}
}

func parseString(runes []rune) (types.Value, error) {
	last := len(runes) - 1
	if last == 0 || runes[last] != '"' {
		return nil, Error{"String quotes are unbalanced", nil}
	}
	var result []rune
	var escaping bool
	for _, r := range runes[1:last] {
		if !escaping {
			if r == '\\' {
				escaping = true
			} else {
				result = append(result, r)
			}
		} else {
			switch r {
			case '\\':
				result = append(result, r)
			case '"':
				result = append(result, r)
			case 'n':
				result = append(result, '\n')
			case 't':
				result = append(result, '\t')
			default:
				return nil, Error{"String escape sequence is invalid", nil}
			}
			escaping = false
		}
	}
	if escaping {
		return nil, Error{"String slashes are unbalanced", nil}
	}
	return types.String(string(result)), nil
}
