// Package widgets describes the widgets served to the OpenBB workspace.
package widgets

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ParamType is the input control a workspace renders for a parameter.
type ParamType string

const (
	ParamText    ParamType = "text"
	ParamDate    ParamType = "date"
	ParamBoolean ParamType = "boolean"
)

// ParamSpec describes one widget parameter.
type ParamSpec struct {
	ParamName   string    `json:"paramName"`
	Label       string    `json:"label"`
	Type        ParamType `json:"type"`
	Description string    `json:"description,omitempty"`
	Value       any       `json:"value"`
	Show        bool      `json:"show"`
}

// GridData is the default widget size on the workspace grid.
type GridData struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Descriptor is a widgets.json entry.
type Descriptor struct {
	WidgetID    string      `json:"widgetId"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	SubCategory string      `json:"subCategory,omitempty"`
	Type        string      `json:"type"`
	Endpoint    string      `json:"endpoint"`
	GridData    GridData    `json:"gridData"`
	RunButton   bool        `json:"runButton"`
	Raw         bool        `json:"raw"`
	Params      []ParamSpec `json:"params"`
}

func (d Descriptor) clone() Descriptor {
	d.Params = append(make([]ParamSpec, 0, len(d.Params)), d.Params...)
	return d
}

// Builder assembles a Descriptor. The zero WidgetID defaults to the endpoint.
type Builder struct {
	d Descriptor
}

// NewDescriptor starts a descriptor served at endpoint.
func NewDescriptor(endpoint string) *Builder {
	return &Builder{d: Descriptor{Endpoint: endpoint, Type: "table", Params: []ParamSpec{}}}
}

// ID sets the widget id.
func (b *Builder) ID(id string) *Builder {
	b.d.WidgetID = id
	return b
}

func (b *Builder) Name(name string) *Builder {
	b.d.Name = name
	return b
}

func (b *Builder) Description(s string) *Builder {
	b.d.Description = s
	return b
}

// Type sets the workspace renderer, e.g. "chart", "table", "markdown".
func (b *Builder) Type(widgetType string) *Builder {
	b.d.Type = widgetType
	return b
}

func (b *Builder) RunButton(on bool) *Builder {
	b.d.RunButton = on
	return b
}

// Raw marks widgets whose endpoint can also return raw data with raw=true.
func (b *Builder) Raw(on bool) *Builder {
	b.d.Raw = on
	return b
}

func (b *Builder) Category(category, subCategory string) *Builder {
	b.d.Category, b.d.SubCategory = category, subCategory
	return b
}

func (b *Builder) Grid(w, h int) *Builder {
	b.d.GridData = GridData{W: w, H: h}
	return b
}

// Param appends a parameter; order is preserved in widgets.json.
func (b *Builder) Param(p ParamSpec) *Builder {
	b.d.Params = append(b.d.Params, p)
	return b
}

// Build validates and returns the descriptor.
func (b *Builder) Build() (Descriptor, error) {
	d := b.d.clone()
	if !strings.HasPrefix(d.Endpoint, "/") || len(d.Endpoint) < 2 {
		return Descriptor{}, errors.Newf("widget endpoint %q must be an absolute path", d.Endpoint)
	}
	if d.WidgetID == "" {
		d.WidgetID = d.Endpoint
	}
	if d.Name == "" {
		return Descriptor{}, errors.Newf("widget %q has no name", d.WidgetID)
	}

	seen := make(map[string]bool, len(d.Params))
	for _, p := range d.Params {
		if p.ParamName == "" {
			return Descriptor{}, errors.Newf("widget %q has a parameter without a name", d.WidgetID)
		}
		if seen[p.ParamName] {
			return Descriptor{}, errors.Newf("widget %q declares parameter %q twice", d.WidgetID, p.ParamName)
		}
		seen[p.ParamName] = true
		switch p.Type {
		case ParamText, ParamDate:
			if _, ok := p.Value.(string); !ok && p.Value != nil {
				return Descriptor{}, errors.Newf("widget %q parameter %q: %s default must be a string", d.WidgetID, p.ParamName, p.Type)
			}
		case ParamBoolean:
			if _, ok := p.Value.(bool); !ok {
				return Descriptor{}, errors.Newf("widget %q parameter %q: boolean default must be a bool", d.WidgetID, p.ParamName)
			}
		default:
			return Descriptor{}, errors.Newf("widget %q parameter %q has unsupported type %q", d.WidgetID, p.ParamName, p.Type)
		}
	}
	return d, nil
}

// MustBuild is Build for static catalogs; it panics on an invalid descriptor.
func (b *Builder) MustBuild() Descriptor {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}
