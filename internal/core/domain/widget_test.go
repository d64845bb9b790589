package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/repute/internal/core/domain"
)

func TestWidgetState_Valid(t *testing.T) {
	tests := []struct {
		name  string
		state domain.WidgetState[int]
		want  bool
	}{
		{name: "unmounted empty", state: domain.WidgetState[int]{}, want: true},
		{name: "loading", state: domain.LoadingState[int](), want: true},
		{name: "error", state: domain.ErrorState[int](errors.New("boom")), want: true},
		{name: "ready", state: domain.ReadyState(7), want: true},
		{
			name:  "loading with data",
			state: domain.WidgetState[int]{Phase: domain.PhaseLoading, Loading: true, Data: 1, HasData: true},
			want:  false,
		},
		{
			name:  "error with data",
			state: domain.WidgetState[int]{Phase: domain.PhaseError, Err: errors.New("x"), HasData: true},
			want:  false,
		},
		{
			name:  "mounted with nothing",
			state: domain.WidgetState[int]{Phase: domain.PhaseReady},
			want:  false,
		},
		{
			name:  "unmounted holding data",
			state: domain.WidgetState[int]{HasData: true},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Valid())
		})
	}
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "unmounted", domain.PhaseUnmounted.String())
	assert.Equal(t, "loading", domain.PhaseLoading.String())
	assert.Equal(t, "error", domain.PhaseError.String())
	assert.Equal(t, "ready", domain.PhaseReady.String())
}

func TestParseWidgetKind(t *testing.T) {
	for _, name := range []string{"reputation", "badge", "profile", "category"} {
		kind, err := domain.ParseWidgetKind(name)
		require.NoError(t, err)
		assert.Equal(t, domain.WidgetKind(name), kind)
	}

	_, err := domain.ParseWidgetKind("leaderboard")
	assert.ErrorIs(t, err, domain.ErrUnknownWidgetKind)
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Theme
		wantErr bool
	}{
		{in: "", want: domain.ThemeAuto},
		{in: "auto", want: domain.ThemeAuto},
		{in: "Dark", want: domain.ThemeDark},
		{in: " light ", want: domain.ThemeLight},
		{in: "sepia", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseTheme(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidTheme)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != domain.ThemeAuto, got.IsConcrete())
		})
	}
}

func TestTheme_Resolve(t *testing.T) {
	var asked int
	dark := func() bool { asked++; return true }

	assert.Equal(t, domain.ThemeLight, domain.ThemeLight.Resolve(dark))
	assert.Equal(t, domain.ThemeDark, domain.ThemeDark.Resolve(dark))
	assert.Zero(t, asked)

	assert.Equal(t, domain.ThemeDark, domain.ThemeAuto.Resolve(dark))
	assert.Equal(t, domain.ThemeDark, domain.Theme("").Resolve(dark))
	assert.Equal(t, 2, asked)

	assert.Equal(t, domain.ThemeLight, domain.ThemeAuto.Resolve(nil))
}

func TestWidgetOptions_Validate(t *testing.T) {
	assert.ErrorIs(t, domain.WidgetOptions{Address: "0xabc"}.Validate(), domain.ErrMissingAPIKey)
	assert.ErrorIs(t, domain.WidgetOptions{APIKey: "k", Address: "  "}.Validate(), domain.ErrMissingAddress)
	assert.NoError(t, domain.WidgetOptions{APIKey: "k", Address: "0xabc"}.Validate())
}

func TestWidgetSpec_Options(t *testing.T) {
	settings := domain.Settings{APIKey: "key", BaseURL: "http://local", Theme: domain.ThemeDark}

	opts := domain.WidgetSpec{Address: "0xabc", ClassName: "card"}.Options(settings)
	assert.Equal(t, domain.WidgetOptions{
		APIKey: "key", Address: "0xabc", BaseURL: "http://local", Theme: domain.ThemeDark, ClassName: "card",
	}, opts)

	opts = domain.WidgetSpec{Address: "0xabc", Theme: domain.ThemeLight}.Options(settings)
	assert.Equal(t, domain.ThemeLight, opts.Theme, "widget theme overrides the global one")
}

func TestBadgeResult(t *testing.T) {
	single := domain.NewSingleBadgeResult(&domain.BadgeDetail{Earned: true})
	assert.Equal(t, domain.BadgeResultSingle, single.Kind)
	assert.NotNil(t, single.Single)
	assert.Nil(t, single.Collection)

	collection := domain.NewBadgeCollectionResult(&domain.Badges{})
	assert.Equal(t, domain.BadgeResultCollection, collection.Kind)
	assert.Nil(t, collection.Single)
	assert.NotNil(t, collection.Collection)
}
