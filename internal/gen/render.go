// render.go -- turn the collected methods into Go source
//
// (c) 2025 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

type fileData struct {
	Command  string
	BuildTag string
	Package  string
	Import   string
	Types    []*typeSpec
}

type typeSpec struct {
	Name    string
	Recv    string
	Methods []*method
}

type method struct {
	Name string
	Recv string
	Doc  string
	Body []string
}

var fileTmpl = template.Must(template.New("file").Parse(`// Code generated by "{{.Command}}"; DO NOT EDIT.
{{if .BuildTag}}
//go:build {{.BuildTag}}
{{end}}
package {{.Package}}
{{if .Import}}
import {{.Import}}
{{end}}
{{range .Types}}{{range .Methods}}
// {{.Name}} {{.Doc}}
func (v {{.Recv}}) {{.Name}}() {{.Recv}} {
{{- range .Body}}
	{{.}}
{{- end}}
	return v
}
{{end}}{{end}}`))

func render(fd *fileData) ([]byte, error) {
	var buf bytes.Buffer

	if err := fileTmpl.Execute(&buf, fd); err != nil {
		return nil, fmt.Errorf("gen: template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}
