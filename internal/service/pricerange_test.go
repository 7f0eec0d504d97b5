package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriceBracket(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantMin string
		wantMax string
	}{
		{name: "empty token", token: "", wantMin: "", wantMax: ""},
		{name: "any sentinel", token: "any", wantMin: "", wantMax: ""},
		{name: "bounded range", token: "1000-1500", wantMin: "1000", wantMax: "1500"},
		{name: "open-ended range", token: "3000+", wantMin: "3000", wantMax: ""},
		{name: "single bound range", token: "0-500", wantMin: "0", wantMax: "500"},
		{name: "decimal bounds", token: "999.50-1250.75", wantMin: "999.5", wantMax: "1250.75"},
		{name: "reversed bounds ignored", token: "1500-1000", wantMin: "", wantMax: ""},
		{name: "negative bound ignored", token: "-100-200", wantMin: "", wantMax: ""},
		{name: "garbage ignored", token: "cheap", wantMin: "", wantMax: ""},
		{name: "garbage lower bound ignored", token: "abc-500", wantMin: "", wantMax: ""},
		{name: "garbage open bound ignored", token: "abc+", wantMin: "", wantMax: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := ParsePriceBracket(tt.token)

			if tt.wantMin == "" {
				assert.Nil(t, min)
			} else {
				assert.NotNil(t, min)
				assert.Equal(t, tt.wantMin, min.String())
			}
			if tt.wantMax == "" {
				assert.Nil(t, max)
			} else {
				assert.NotNil(t, max)
				assert.Equal(t, tt.wantMax, max.String())
			}
		})
	}
}
