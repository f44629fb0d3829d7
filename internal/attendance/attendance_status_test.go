package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sp(v string) *string { return &v }

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name  string
		entry *string
		want  string
	}{
		{"no punch", nil, StatusAbsent},
		{"empty marker", sp("--:--"), StatusAbsent},
		{"blank", sp("   "), StatusAbsent},
		{"early", sp("07:55"), StatusPresent},
		{"at present cutoff", sp("08:20"), StatusPresent},
		{"one minute late", sp("08:21"), StatusLate},
		{"at late cutoff", sp("08:30"), StatusLate},
		{"past late cutoff", sp("08:31"), StatusAbsent},
		{"with seconds", sp("08:20:59"), StatusPresent},
		{"midday", sp("12:00"), StatusAbsent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveStatus(tc.entry))
		})
	}
}

func TestNormalizeTime(t *testing.T) {
	assert.Nil(t, NormalizeTime(nil))
	assert.Nil(t, NormalizeTime(sp("")))
	assert.Nil(t, NormalizeTime(sp("--:--")))

	got := NormalizeTime(sp(" 08:15 "))
	if assert.NotNil(t, got) {
		assert.Equal(t, "08:15", *got)
	}
}
