package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompile_SingleTemplate(t *testing.T) {
	got := Compile("myproxy", []string{`Host \K%s`})
	assert.Equal(t, `Host \Kmyproxy`, got)
}

func TestCompile_JoinsWithAlternation(t *testing.T) {
	templates := []string{`^\s*%s\b`, `\b%s\b\s*=`}
	got := Compile("timeout", templates)
	assert.Equal(t, `^\s*timeout\b|\btimeout\b\s*=`, got)
}

func TestCompile_PreservesTemplateOrder(t *testing.T) {
	tests := []struct {
		name      string
		symbol    string
		templates []string
		want      string
	}{
		{
			name:      "TwoTemplates",
			symbol:    "x",
			templates: []string{"a%s", "b%s"},
			want:      "ax|bx",
		},
		{
			name:      "ReversedTemplates",
			symbol:    "x",
			templates: []string{"b%s", "a%s"},
			want:      "bx|ax",
		},
		{
			name:      "ThreeTemplates",
			symbol:    "id",
			templates: []string{`def %s`, `%s =`, `class %s`},
			want:      `def id|id =|class id`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compile(tt.symbol, tt.templates))
		})
	}
}

func TestCompile_EmptyTemplateList(t *testing.T) {
	assert.Equal(t, "", Compile("anything", nil))
	assert.Equal(t, "", Compile("anything", []string{}))
}

func TestCompile_SymbolWithRegexMetacharacters(t *testing.T) {
	// The compiler substitutes verbatim; escaping is the template author's
	// concern.
	got := Compile("a.b", []string{`%s`})
	assert.Equal(t, "a.b", got)
}
