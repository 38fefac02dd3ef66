//go:build ignore
// +build ignore

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

// Field represents a single field in a packet struct
type Field struct {
	Name      string // The Struct field name (e.g., "ProtocolVersion")
	FieldType string // The high-level type (e.g., "VarInt", "PrefixedArray", "Optional")
	WriteFn   string
	ReadFn    string
	Args      []string // trailing arguments, e.g. a string bound or a Mapper
}

// GeneratedStruct represents a struct found in the source code marked for generation
type GeneratedStruct struct {
	Name              string
	Fields            []Field
	GenRead, GenWrite bool

	// Direction is "Serverbound" or "Clientbound"; empty for structs that are
	// not registered packets.
	Direction string
	Opcode    int64
}

func (s GeneratedStruct) OpcodeHex() string {
	return fmt.Sprintf("0x%02X", s.Opcode)
}

type File struct {
	Name    string
	Structs []GeneratedStruct
}

// State groups the packets registered for one connection state.
type State struct {
	Name    string
	Packets []GeneratedStruct
}

// stateOf derives the connection state from the source file name:
// handshake.go, status.go, login.go and play_*.go.
func stateOf(file string) string {
	name := strings.TrimSuffix(file, filepath.Ext(file))
	switch {
	case name == "handshake":
		return "Handshaking"
	case name == "status":
		return "Status"
	case name == "login":
		return "Login"
	case strings.HasPrefix(name, "play_"):
		return "Play"
	}
	return ""
}

// parseGen parses "@gen:r,w,sb=0x00" into its options.
func parseGen(text string) (s GeneratedStruct, ok bool) {
	parts := strings.SplitN(text, "@gen:", 2)
	if len(parts) < 2 {
		return s, false
	}

	for _, opt := range strings.Split(strings.TrimSpace(parts[1]), ",") {
		opt = strings.TrimSpace(opt)
		key, val, _ := strings.Cut(opt, "=")
		switch key {
		case "r":
			s.GenRead = true
		case "w":
			s.GenWrite = true
		case "sb", "cb":
			op, err := strconv.ParseInt(val, 0, 32)
			if err != nil {
				panic(fmt.Sprintf("bad opcode in %q: %v", text, err))
			}
			s.Direction = "Serverbound"
			if key == "cb" {
				s.Direction = "Clientbound"
			}
			s.Opcode = op
		}
	}
	return s, true
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run gen_packet_codec.go -- path/to/dir")
		os.Exit(1)
	}

	targetDir := os.Args[len(os.Args)-1] // Take the last argument as the directory
	fset := token.NewFileSet()
	var parsedFiles []File
	var pkgName string
	states := map[string]*State{}

	filePaths, _ := filepath.Glob(filepath.Join(targetDir, "*.go"))
	sort.Strings(filePaths)

	for _, filePath := range filePaths {
		base := filepath.Base(filePath)
		// Skip generated files to avoid double parsing
		if strings.HasPrefix(base, "zz_generated") || strings.HasSuffix(base, "_test.go") {
			continue
		}

		node, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
		if err != nil {
			panic(err)
		}

		if pkgName == "" {
			pkgName = node.Name.Name
		}

		var fileStructs []GeneratedStruct

		// Walk through top-level declarations
		for _, decl := range node.Decls {
			gen, ok := decl.(*ast.GenDecl)

			// filter for only type declarations with comments
			if !ok || gen.Tok != token.TYPE || gen.Doc == nil {
				continue
			}

			var gs GeneratedStruct
			var isGen bool
			for _, comment := range gen.Doc.List {
				if gs, isGen = parseGen(comment.Text); isGen {
					break
				}
			}

			// filter for types with @gen in doc comment
			if !isGen {
				continue
			}

			for _, spec := range gen.Specs {
				tspec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				// type assertion for struct type
				structType, ok := tspec.Type.(*ast.StructType)
				if !ok {
					continue
				}

				var fields []Field
				for _, field := range structType.Fields.List {
					for _, name := range field.Names {
						rawTag := ""
						if field.Tag != nil {
							rawTag, _ = strconv.Unquote(field.Tag.Value)
						}

						parsedTag := reflect.StructTag(rawTag)
						f := Field{
							Name:      name.Name,
							FieldType: parsedTag.Get("field"),
							WriteFn:   parsedTag.Get("write"),
							ReadFn:    parsedTag.Get("read"),
						}
						if inner := parsedTag.Get("inner"); inner != "" {
							f.WriteFn = "Write" + inner
							f.ReadFn = "Read" + inner
						}
						if args := parsedTag.Get("args"); args != "" {
							f.Args = strings.Split(args, ",")
						}

						if f.FieldType == "" && f.WriteFn == "" {
							continue // Skip fields without codec tags
						}
						fields = append(fields, f)
					}
				}

				gs.Name = tspec.Name.Name
				gs.Fields = fields
				fileStructs = append(fileStructs, gs)

				if gs.Direction == "" {
					continue
				}
				stateName := stateOf(base)
				if stateName == "" {
					panic(fmt.Sprintf("%s: packet %s outside of a state file", base, gs.Name))
				}
				st, ok := states[stateName]
				if !ok {
					st = &State{Name: stateName}
					states[stateName] = st
				}
				st.Packets = append(st.Packets, gs)
			}
		}
		if len(fileStructs) > 0 {
			parsedFiles = append(parsedFiles, File{
				Name:    base,
				Structs: fileStructs,
			})
		}
	}

	var stateList []State
	for _, name := range []string{"Handshaking", "Status", "Login", "Play"} {
		st, ok := states[name]
		if !ok {
			st = &State{Name: name}
		}
		sort.SliceStable(st.Packets, func(i, j int) bool {
			a, b := st.Packets[i], st.Packets[j]
			if a.Direction != b.Direction {
				return a.Direction == "Serverbound"
			}
			return a.Opcode < b.Opcode
		})
		stateList = append(stateList, *st)
	}

	const tmpl = `// Code generated by gen_packet_codec.go; DO NOT EDIT.

package {{.PkgName}}

import (
	"context"
	"io"
)
{{range .States}}
func register{{.Name}}(r *Registry) {
{{- range .Packets}}
	r.mustRegister({{.Direction}}, {{.OpcodeHex}}, func() Packet { return &{{.Name}}{} })
{{- end}}
}
{{end}}
{{- range .Files}}
// Source: {{.Name}}
{{range .Structs}}
{{- if .Direction}}
type {{.Name}}Handler interface {
	Handle{{.Name}}(ctx context.Context, p *{{.Name}}) error
}

func (p *{{.Name}}) Dispatch(ctx context.Context, h Handler) error {
	if c, ok := h.({{.Name}}Handler); ok {
		return c.Handle{{.Name}}(ctx, p)
	}
	return nil
}
{{end}}
{{- if .GenWrite}}
func (p {{.Name}}) Encode(w io.Writer) (err error) {
{{- range .Fields}}
	{{- if .FieldType}}
	if err = Write{{.FieldType}}(w, p.{{.Name}}{{if .WriteFn}}, {{.WriteFn}}{{end}}{{range .Args}}, {{.}}{{end}}); err != nil {
		return
	}
	{{- else}}
	if err = {{.WriteFn}}(w, p.{{.Name}}); err != nil {
		return
	}
	{{- end}}
{{- end}}
	return
}
{{end}}
{{- if .GenRead}}
func (p *{{.Name}}) Decode(r *FrameReader) (err error) {
{{- range .Fields}}
	{{- if .FieldType}}
	if p.{{.Name}}, err = Read{{.FieldType}}(r{{if .ReadFn}}, {{.ReadFn}}{{end}}{{range .Args}}, {{.}}{{end}}); err != nil {
		return
	}
	{{- else}}
	if p.{{.Name}}, err = {{.ReadFn}}(r); err != nil {
		return
	}
	{{- end}}
{{- end}}
	return nil
}
{{end}}
{{- end}}
{{- end}}`

	t := template.Must(template.New("code").Parse(tmpl))
	data := struct {
		PkgName string
		States  []State
		Files   []File
	}{
		PkgName: pkgName,
		States:  stateList,
		Files:   parsedFiles,
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		panic(err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		panic(fmt.Sprintf("formatting generated code: %v", err))
	}

	// Output next to the source files
	outFile := filepath.Join(targetDir, "zz_generated_codec.go")
	if err := os.WriteFile(outFile, src, 0o644); err != nil {
		panic(err)
	}

	fmt.Printf("Generated %s for package %s\n", outFile, pkgName)
}
