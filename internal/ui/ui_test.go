package ui

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestCN(t *testing.T) {
	assert.Equal(t, "", CN())
	assert.Equal(t, "a b", CN("a", nil, "b"))
	assert.Equal(t, "rounded-md px-4", CN("rounded-full px-2.5", "rounded-md px-4"))
	assert.Equal(t, "hover:bg-neutral-400 bg-red-500", CN("bg-neutral-300 hover:bg-neutral-400", "bg-red-500"))
}

func TestButton(t *testing.T) {
	out := render(t, Button(Label[*ButtonConfig]("it's nice")))

	assert.True(t, strings.HasPrefix(out, "<button "), out)
	assert.True(t, strings.HasSuffix(out, ">it&#39;s nice</button>"), out)
	assert.Contains(t, out, `type="button"`)
	assert.NotContains(t, out, "disabled ")

	class := ButtonClass(ButtonVariantDefault, ButtonSizeDefault)
	assert.Contains(t, out, `class="`+class+`"`)
	for _, want := range []string{"bg-neutral-300", "text-neutral-950", "rounded-full", "px-2.5", "py-1", "hover:bg-neutral-400", "duration-300"} {
		assert.Contains(t, strings.Fields(class), want)
	}
}

func TestButtonCallerClassesOverride(t *testing.T) {
	class := ButtonClass(ButtonVariantDefault, ButtonSizeDefault, "bg-blue-500 px-4", nil)
	fields := strings.Fields(class)

	assert.Contains(t, fields, "bg-blue-500")
	assert.Contains(t, fields, "px-4")
	assert.Contains(t, fields, "py-1")
	assert.Contains(t, fields, "hover:bg-neutral-400")
	assert.NotContains(t, fields, "bg-neutral-300")
	assert.NotContains(t, fields, "px-2.5")
}

func TestButtonVariants(t *testing.T) {
	tests := []struct {
		name    string
		variant ButtonVariant
		size    ButtonSize
		want    []string
		dropped []string
	}{
		{"primary", ButtonVariantPrimary, ButtonSizeDefault, []string{"bg-neutral-950", "text-neutral-50", "hover:bg-neutral-800"}, []string{"bg-neutral-300", "text-neutral-950", "hover:bg-neutral-400"}},
		{"outline", ButtonVariantOutline, ButtonSizeDefault, []string{"border", "bg-transparent"}, []string{"bg-neutral-300"}},
		{"small", ButtonVariantDefault, ButtonSizeSm, []string{"px-2", "py-0.5", "text-sm"}, []string{"px-2.5", "py-1"}},
		{"icon", ButtonVariantDefault, ButtonSizeIcon, []string{"size-8", "p-0"}, []string{"px-2.5", "py-1"}},
		{"link icon compound", ButtonVariantLink, ButtonSizeIcon, []string{"underline", "hover:underline"}, nil},
		{"unknown falls back to base", ButtonVariant("nope"), ButtonSize("nope"), []string{"bg-neutral-300", "px-2.5"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := strings.Fields(ButtonClass(tt.variant, tt.size))
			for _, w := range tt.want {
				assert.Contains(t, fields, w)
			}
			for _, d := range tt.dropped {
				assert.NotContains(t, fields, d)
			}
		})
	}
}

func TestButtonAttributes(t *testing.T) {
	out := render(t, Button(
		ButtonType("submit"),
		Disabled(true),
		Attr[*ButtonConfig]("class", "ignored"),
		Attr[*ButtonConfig]("data-id", `a"b`),
	))

	assert.Contains(t, out, `type="submit"`)
	assert.Contains(t, out, " disabled ")
	assert.Contains(t, out, `data-id="a&#34;b"`)
	assert.NotContains(t, out, "ignored")
}

func TestVariantsDefaults(t *testing.T) {
	v := Variants{
		Base: "p-2",
		Dimensions: []Dimension{
			{Name: "tone", Options: map[string]string{"calm": "bg-blue-100", "loud": "bg-red-500"}},
		},
		Defaults:  map[string]string{"tone": "calm"},
		Compounds: []Compound{{When: map[string]string{"tone": "loud"}, Class: "font-bold"}},
	}

	assert.Equal(t, "p-2 bg-blue-100", v.Class(nil))
	assert.Equal(t, "p-2 bg-red-500 font-bold", v.Class(map[string]string{"tone": "loud"}))
	assert.Equal(t, "bg-red-500 font-bold p-4", v.Class(map[string]string{"tone": "loud"}, "p-4"))
}

func TestLogo(t *testing.T) {
	out := render(t, Logo(Class[*IconConfig]("size-8")))

	assert.True(t, strings.HasPrefix(out, "<svg "), out)
	assert.Contains(t, out, `class="shrink-0 size-8"`)
	assert.Contains(t, out, `viewBox="0 0 32 32"`)
	assert.Contains(t, out, "<circle")
	assert.True(t, strings.HasSuffix(out, "</svg>"))
}

func TestElementEscapes(t *testing.T) {
	out := render(t, Element("p", templ.Attributes{"title": "<x>", "hidden": true, "draggable": false}, Text("a & b")))
	assert.Equal(t, `<p hidden title="&lt;x&gt;">a &amp; b</p>`, out)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestElementWriteError(t *testing.T) {
	err := Element("div", nil, Text("x")).Render(context.Background(), failingWriter{})
	assert.Error(t, err)

	var w io.Writer = failingWriter{}
	assert.Error(t, WriteAttributes(w, templ.Attributes{"id": "x"}))
}
