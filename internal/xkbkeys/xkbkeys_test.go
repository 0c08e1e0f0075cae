package xkbkeys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifierFromName(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{"shift", ModShift},
		{"caps", ModCaps},
		{"ctrl", ModCtrl},
		{"alt", ModAlt},
		{"mod2", ModMod2},
		{"mod3", ModMod3},
		{"logo", ModLogo},
		{"mod5", ModMod5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ModifierFromName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModifierFromNameRejectsUnknown(t *testing.T) {
	_, err := ModifierFromName("hyper")
	assert.Error(t, err)
}

func TestModifierBitsAreDistinct(t *testing.T) {
	all := []Modifier{ModShift, ModCaps, ModCtrl, ModAlt, ModMod2, ModMod3, ModLogo, ModMod5}
	var union Modifier
	for _, m := range all {
		assert.Zero(t, union&m, "modifier bits must not overlap")
		union |= m
	}
}
