package issue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildLink(t *testing.T) {
	tests := []struct {
		name     string
		template string
		id       string
		want     string
	}{
		{
			name:     "simple substitution",
			template: "https://x/${id}",
			id:       "ABC-123",
			want:     "https://x/ABC-123",
		},
		{
			name:     "every occurrence is replaced",
			template: "https://x/${id}?key=${id}",
			id:       "ABC-1",
			want:     "https://x/ABC-1?key=ABC-1",
		},
		{
			name:     "identifier is percent-encoded",
			template: "https://x/${id}",
			id:       "ABC 1/2",
			want:     "https://x/ABC%201%2F2",
		},
		{
			name:     "template without placeholder is unchanged",
			template: "https://x/fixed",
			id:       "ABC-1",
			want:     "https://x/fixed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildLink(tt.template, tt.id))
		})
	}
}
