package prodscan_test

import (
	"testing"

	"github.com/fwojciec/prodscan"
	"github.com/stretchr/testify/assert"
)

func TestMatchLabeledToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "full label with colon", text: "Артикул: ABC-123", want: "ABC-123", wantOK: true},
		{name: "abbreviated label with dot", text: "арт. XY9", want: "XY9", wantOK: true},
		{name: "label word without separator", text: "артикулечка не подходит", wantOK: false},
		{name: "uppercase label", text: "АРТИКУЛ 77-B", want: "77-B", wantOK: true},
		{name: "token case is preserved", text: "артикул:aBc", want: "aBc", wantOK: true},
		{name: "full label preferred over abbreviation", text: "арт. FIRST артикул: SECOND", want: "SECOND", wantOK: true},
		{name: "non-breaking space separator", text: "Артикул:\u00a0NB-1", want: "NB-1", wantOK: true},
		{name: "thin space separator", text: "Артикул:\u2009ABC-1", want: "ABC-1", wantOK: true},
		{name: "narrow no-break space after abbreviation", text: "арт.\u202fXY9", want: "XY9", wantOK: true},
		{name: "ideographic space separator", text: "Артикул:\u3000Z1", want: "Z1", wantOK: true},
		{name: "token stops at punctuation", text: "Арт: Q1_2", want: "Q1", wantOK: true},
		{name: "no label", text: "Цена 100 руб.", wantOK: false},
		{name: "empty text", text: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := prodscan.MatchLabeledToken(tt.text, prodscan.ArticleLabels)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasArticleMention(t *testing.T) {
	t.Parallel()

	assert.True(t, prodscan.HasArticleMention("Артикул: 1"))
	assert.True(t, prodscan.HasArticleMention("наш артикул 1"))
	assert.True(t, prodscan.HasArticleMention("арт. 1"))
	assert.False(t, prodscan.HasArticleMention("АРТИКУЛ 1"))
	assert.False(t, prodscan.HasArticleMention("Арт: 1"))
}
