package render

import (
	"sort"
	"text/template"
)

// outputFormat pairs a parsed template with its file extension.
type outputFormat struct {
	tmpl *template.Template
	ext  string
}

const carrayTemplate = `// Gradient "{{.Name}}"{{if .Program}} from program "{{.Program}}"{{end}}.
// {{len .Steps}} steps interpolated in the {{.Space}} color space.
#include <stdint.h>

static const uint8_t {{cname .Name}}[{{len .Steps}}][4] = {
{{- range .Steps}}
    {{"{"}}{{byte .RGBW.R}}, {{byte .RGBW.G}}, {{byte .RGBW.B}}, {{byte .RGBW.W}}{{"}"}},
{{- end}}
};
`

const csvTemplate = `index,t,r,g,b,w
{{- range .Steps}}
{{.Index}},{{printf "%.6f" .T}},{{byte .RGBW.R}},{{byte .RGBW.G}},{{byte .RGBW.B}},{{byte .RGBW.W}}
{{- end}}
`

const hexTemplate = `{{range .Steps}}{{hex .RGB}}
{{end}}`

var formats = map[string]outputFormat{
	"carray": {
		tmpl: template.Must(template.New("carray").Funcs(funcMap).Parse(carrayTemplate)),
		ext:  ".h",
	},
	"csv": {
		tmpl: template.Must(template.New("csv").Funcs(funcMap).Parse(csvTemplate)),
		ext:  ".csv",
	},
	"hex": {
		tmpl: template.Must(template.New("hex").Funcs(funcMap).Parse(hexTemplate)),
		ext:  ".txt",
	},
}

// Formats lists the available output format names.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
