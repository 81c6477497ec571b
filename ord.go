package pgqb

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	DirAsc  Dir = 0
	DirDesc Dir = 1
)

// Short for "direction". Enum for ordering direction: "ASC" or "DESC".
type Dir byte

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding. Panics on an unknown direction.
func (self Dir) Append(text []byte) []byte {
	str := self.String()
	if str == `` {
		panic(self.invalid(`appending order direction`))
	}
	return append(text, str...)
}

// Implement `fmt.Stringer`. Returns an empty string for unknown values.
func (self Dir) String() string {
	switch self {
	case DirAsc:
		return `ASC`
	case DirDesc:
		return `DESC`
	default:
		return ``
	}
}

// Parses from a string, which must be either "asc" or "desc", in any case.
func (self *Dir) Parse(src string) error {
	switch {
	case strings.EqualFold(src, `asc`):
		*self = DirAsc
		return nil
	case strings.EqualFold(src, `desc`):
		*self = DirDesc
		return nil
	default:
		return ErrInvalidInput.while(`parsing order direction`).because(
			fmt.Errorf(`unrecognized direction %q`, src),
		)
	}
}

// Implement `encoding.TextMarshaler`.
func (self Dir) MarshalText() ([]byte, error) {
	str := self.String()
	if str == `` {
		return nil, self.invalid(`encoding order direction`)
	}
	return []byte(strings.ToLower(str)), nil
}

func (self Dir) invalid(while string) Err {
	return ErrInvalidInput.while(while).because(fmt.Errorf(`unknown direction %d`, self))
}

// Implement `encoding.TextUnmarshaler`.
func (self *Dir) UnmarshalText(src []byte) error {
	return self.Parse(string(src))
}

/*
Short for "ordering". One element of an "order by" clause: a column and a
direction. The column is included verbatim. Renders as:

	<column> <ASC|DESC>
*/
type Ord struct {
	Col string
	Dir Dir
}

// Shortcut for `Ord{col, DirAsc}`.
func OrdAsc(col string) Ord { return Ord{col, DirAsc} }

// Shortcut for `Ord{col, DirDesc}`.
func OrdDesc(col string) Ord { return Ord{col, DirDesc} }

// Implement the `Appender` interface.
func (self Ord) Append(text []byte) []byte {
	appendStr(&text, self.Col)
	appendStr(&text, ` `)
	return self.Dir.Append(text)
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Ord) String() string { return bytesToMutableString(self.Append(nil)) }

var ordReg = regexp.MustCompile(`^\s*((?:\w+\.)*\w+)(?:\s+(\w+))?\s*$`)

/*
Parses an ordering from client input such as "name", "name desc" or
"users.id ASC". The direction defaults to ascending. The column must be a
dot-separated sequence of word characters, which prevents arbitrary SQL from
reaching the "order by" clause.
*/
func ParseOrd(src string) (Ord, error) {
	match := ordReg.FindStringSubmatch(src)
	if match == nil {
		return Ord{}, ErrInvalidInput.while(`parsing ordering`).because(
			fmt.Errorf(`%q is not a valid ordering string; expected format: "<ident> [asc|desc]"`, src),
		)
	}

	out := Ord{Col: match[1]}
	if match[2] != `` {
		err := out.Dir.Parse(match[2])
		if err != nil {
			return Ord{}, err
		}
	}
	return out, nil
}
