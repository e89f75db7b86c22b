package fonts_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hashversion/koes/internal/fonts"
)

func TestVariable(t *testing.T) {
	assert.Equal(t, "__variable_font-geist-sans __variable_font-geist-mono", fonts.Variable(fonts.Default...))
	assert.Equal(t, "", fonts.Variable())
	assert.Equal(t, "__variable_font-geist-mono", fonts.Variable(fonts.Font{Family: "x"}, fonts.GeistMono))
}

func TestStylesheet(t *testing.T) {
	css, err := fonts.Stylesheet("/fonts", fonts.Default...)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(css, "@font-face"))
	assert.Contains(t, css, `font-family: "Geist Sans";`)
	assert.Contains(t, css, `src: url("/fonts/GeistVF.woff") format("woff");`)
	assert.Contains(t, css, `src: url("/fonts/GeistMonoVF.woff") format("woff");`)
	assert.Contains(t, css, "font-weight: 100 900;")
	assert.Contains(t, css, "font-display: swap;")
	assert.Contains(t, css, ".__variable_font-geist-sans {\n  --font-geist-sans: \"Geist Sans\", ui-sans-serif, system-ui, sans-serif;\n}")
	assert.Contains(t, css, "--font-geist-mono: \"Geist Mono\", ui-monospace, monospace;")
}

func TestStylesheetFormats(t *testing.T) {
	css, err := fonts.Stylesheet("assets", fonts.Font{Family: "A", Src: "a.woff2", Variable: "--a", Display: "block"})
	require.NoError(t, err)
	assert.Contains(t, css, `url("assets/a.woff2") format("woff2")`)
	assert.Contains(t, css, "font-display: block;")
	assert.NotContains(t, css, "font-weight")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		font    fonts.Font
		wantErr error
	}{
		{"valid", fonts.GeistSans, nil},
		{"no family", fonts.Font{Src: "a.woff", Variable: "--a"}, fonts.ErrNoFamily},
		{"no source", fonts.Font{Family: "A", Variable: "--a"}, fonts.ErrNoSource},
		{"bad variable", fonts.Font{Family: "A", Src: "a.woff", Variable: "font-a"}, fonts.ErrInvalidVariable},
		{"bare dashes", fonts.Font{Family: "A", Src: "a.woff", Variable: "--"}, fonts.ErrInvalidVariable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.font.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	_, err := fonts.Stylesheet("/fonts", fonts.Font{Family: "A", Variable: "--a"})
	assert.ErrorIs(t, err, fonts.ErrNoSource)
}
