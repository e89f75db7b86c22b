package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFile(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "index.html"},
		{"", "index.html"},
		{"/about", "about.html"},
		{"/about/", "about.html"},
		{"/docs/intro", "docs/intro.html"},
		{"/../etc", "etc.html"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, pageFile(tt.path))
		})
	}
}
