package theme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/repute/internal/adapters/theme"
)

func envOf(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestDetector_PrefersDark(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		tty      bool
		darkBG   bool
		wantDark bool
	}{
		{name: "override dark", env: map[string]string{theme.SchemeEnvVar: "dark"}, wantDark: true},
		{name: "override light beats colorfgbg", env: map[string]string{theme.SchemeEnvVar: "Light", "COLORFGBG": "15;0"}, wantDark: false},
		{name: "colorfgbg dark", env: map[string]string{"COLORFGBG": "15;0"}, wantDark: true},
		{name: "colorfgbg light", env: map[string]string{"COLORFGBG": "0;15"}, wantDark: false},
		{name: "colorfgbg three fields", env: map[string]string{"COLORFGBG": "15;default;8"}, wantDark: true},
		{name: "colorfgbg garbage falls through to tty", env: map[string]string{"COLORFGBG": "x"}, tty: true, darkBG: true, wantDark: true},
		{name: "tty dark background", tty: true, darkBG: true, wantDark: true},
		{name: "tty light background", tty: true, darkBG: false, wantDark: false},
		{name: "no tty is light", tty: false, darkBG: true, wantDark: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := theme.NewDetectorWith(envOf(tt.env),
				func() bool { return tt.tty },
				func() bool { return tt.darkBG },
			)
			assert.Equal(t, tt.wantDark, d.PrefersDark())
		})
	}
}

func TestDetector_QueriedEveryCall(t *testing.T) {
	env := map[string]string{theme.SchemeEnvVar: "light"}
	d := theme.NewDetectorWith(envOf(env), func() bool { return false }, func() bool { return false })

	assert.False(t, d.PrefersDark())
	env[theme.SchemeEnvVar] = "dark"
	assert.True(t, d.PrefersDark())
}
