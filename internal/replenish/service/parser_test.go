package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"replenish-service/internal/replenish/model"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want model.ParsedVariant
	}{
		{
			name: "two attributes",
			in:   "[A123] Dress (Red, M)",
			want: model.ParsedVariant{Reference: "A123", Attr1: "Red", Attr2: "M", AttrCount: 2},
		},
		{
			name: "single attribute",
			in:   "[A123] Dress (XS)",
			want: model.ParsedVariant{Reference: "A123", Attr1: "XS", AttrCount: 1},
		},
		{
			name: "single multi-word attribute",
			in:   "[A123] Vestido (Blanco Lagoon)",
			want: model.ParsedVariant{Reference: "A123", Attr1: "Blanco Lagoon", AttrCount: 1},
		},
		{
			name: "splits on last comma",
			in:   "[A123] Dress (Red, Dark, M)",
			want: model.ParsedVariant{Reference: "A123", Attr1: "Red, Dark", Attr2: "M", AttrCount: 2},
		},
		{
			name: "no parens degrades",
			in:   "[A123] Dress",
			want: model.ParsedVariant{Reference: "A123"},
		},
		{
			name: "empty parens degrade",
			in:   "[A123] Dress ()",
			want: model.ParsedVariant{Reference: "A123"},
		},
		{
			name: "bare format fallback",
			in:   "A123 (Azul)",
			want: model.ParsedVariant{Reference: "A123", Attr1: "Azul", AttrCount: 1},
		},
		{
			name: "no brackets no parens",
			in:   "just some text",
			want: model.ParsedVariant{},
		},
		{
			name: "empty input",
			in:   "",
			want: model.ParsedVariant{},
		},
		{
			name: "whitespace around everything",
			in:   "  [ A123 ] Dress ( Red ,  M )  ",
			want: model.ParsedVariant{Reference: "A123", Attr1: "Red", Attr2: "M", AttrCount: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseVariant(tt.in))
		})
	}
}
