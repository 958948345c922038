// internal/cli/schema.go
package cli

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParamType is the declared type of an endpoint parameter.
type ParamType string

const (
	TypeString ParamType = "string"
	TypeInt    ParamType = "int"
	TypeBool   ParamType = "bool"
	TypeDate   ParamType = "date"
	TypeObject ParamType = "object"
)

// Param is one documented endpoint parameter.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Optional    bool
}

// Command is the command line schema of one endpoint method.
type Command struct {
	Name        string
	Method      string
	Description string
	Params      []Param
	Aliases     map[string]string // alias -> canonical parameter
}

// Param returns the parameter called name.
func (c Command) Param(name string) (Param, bool) {
	for _, p := range c.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

const parametersHeading = "Parameters:"

var (
	paramLinePattern = regexp.MustCompile(`^-\s+(\[?)([A-Za-z0-9_.]+)\]?\s+\(([A-Za-z]+)\):\s*(.*)$`)
	aliasPattern     = regexp.MustCompile(`^Alias for (\w+)`)
)

// LoadSchema parses every Go file in fsys and returns one command per exported *Client method
// whose doc comment carries a Parameters block. Commands are sorted by name.
func LoadSchema(fsys fs.FS) ([]Command, error) {
	files, err := fs.Glob(fsys, "*.go")
	if err != nil {
		return nil, err
	}

	fset := token.NewFileSet()
	var commands []Command
	for _, name := range files {
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		file, err := parser.ParseFile(fset, name, src, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}

		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Doc == nil || !fn.Name.IsExported() || !isClientMethod(fn) {
				continue
			}
			cmd, ok, err := parseDoc(fn.Name.Name, fn.Doc.Text())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			if ok {
				commands = append(commands, cmd)
			}
		}
	}

	sort.Slice(commands, func(i, j int) bool { return commands[i].Name < commands[j].Name })
	return commands, nil
}

func isClientMethod(fn *ast.FuncDecl) bool {
	if fn.Recv == nil || len(fn.Recv.List) != 1 {
		return false
	}
	star, ok := fn.Recv.List[0].Type.(*ast.StarExpr)
	if !ok {
		return false
	}
	ident, ok := star.X.(*ast.Ident)
	return ok && ident.Name == "Client"
}

// parseDoc reads the description and Parameters block of a method doc comment. ok is false
// when the comment has no Parameters block.
func parseDoc(method, doc string) (cmd Command, ok bool, err error) {
	lines := strings.Split(doc, "\n")

	heading := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == parametersHeading {
			heading = i
			break
		}
	}
	if heading < 0 {
		return Command{}, false, nil
	}

	cmd = Command{
		Name:        lowerCamel(method),
		Method:      method,
		Description: firstSentence(lines[:heading]),
		Aliases:     map[string]string{},
	}

	for _, line := range lines[heading+1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := paramLinePattern.FindStringSubmatch(line)
		if m == nil {
			break
		}

		name, typ, desc := m[2], ParamType(strings.ToLower(m[3])), strings.TrimSpace(m[4])
		if alias := aliasPattern.FindStringSubmatch(desc); alias != nil {
			cmd.Aliases[name] = alias[1]
			continue
		}

		switch typ {
		case TypeString, TypeInt, TypeBool, TypeDate, TypeObject:
		default:
			return Command{}, false, fmt.Errorf("%s: parameter %s has unknown type %q", method, name, typ)
		}
		cmd.Params = append(cmd.Params, Param{
			Name:        name,
			Type:        typ,
			Description: desc,
			Optional:    m[1] == "[",
		})
	}

	for alias, target := range cmd.Aliases {
		if _, exists := cmd.Param(target); !exists {
			return Command{}, false, fmt.Errorf("%s: %s is an alias for undocumented parameter %s", method, alias, target)
		}
	}
	return cmd, true, nil
}

func firstSentence(lines []string) string {
	var para []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(para) > 0 {
				break
			}
			continue
		}
		para = append(para, line)
	}
	text := strings.Join(para, " ")
	if i := strings.Index(text, ". "); i >= 0 {
		return text[:i+1]
	}
	return text
}

func lowerCamel(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
