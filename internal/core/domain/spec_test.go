package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/lockstep/internal/core/domain"
)

func TestParseMatchSpec(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.MatchSpec
	}{
		{
			name:  "name only",
			input: "requests",
			want:  domain.MatchSpec{Name: "requests"},
		},
		{
			name:  "name and range",
			input: "requests >=2.0, <3.0",
			want:  domain.MatchSpec{Name: "requests", Constraint: ">=2.0, <3.0"},
		},
		{
			name:  "range without space",
			input: "requests>=2.0",
			want:  domain.MatchSpec{Name: "requests", Constraint: ">=2.0"},
		},
		{
			name:  "extras",
			input: "requests[security,socks] >=2.0",
			want: domain.MatchSpec{
				Name:       "requests",
				Constraint: ">=2.0",
				Extras:     []domain.Extra{"security", "socks"},
			},
		},
		{
			name:  "channel override",
			input: "forge::numpy >=1.20",
			want:  domain.MatchSpec{Name: "numpy", Constraint: ">=1.20", Channel: "forge"},
		},
		{
			name:  "channel extras and range",
			input: "forge::numpy[dev] ~1.20",
			want: domain.MatchSpec{
				Name:       "numpy",
				Constraint: "~1.20",
				Extras:     []domain.Extra{"dev"},
				Channel:    "forge",
			},
		},
		{
			name:  "surrounding whitespace",
			input: "  requests >=2.0  ",
			want:  domain.MatchSpec{Name: "requests", Constraint: ">=2.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseMatchSpec(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseMatchSpec_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "range only", input: ">=2.0"},
		{name: "unclosed extras", input: "requests[security >=2.0"},
		{name: "empty extra", input: "requests[security,]"},
		{name: "malformed range", input: "requests >=not.a.version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseMatchSpec(tt.input)
			require.ErrorIs(t, err, domain.ErrInvalidMatchSpec)
		})
	}
}

func TestMatchSpec_Matches(t *testing.T) {
	spec := domain.MustParseMatchSpec("requests >=2.0, <3.0")

	require.True(t, spec.Matches("2.0.0"))
	require.True(t, spec.Matches("2.31.0"))
	require.False(t, spec.Matches("1.9.0"))
	require.False(t, spec.Matches("3.0.0"))
	require.False(t, spec.Matches("not-a-version"))

	// No range matches everything parseable.
	unbounded := domain.MustParseMatchSpec("requests")
	require.True(t, unbounded.Matches("0.0.1"))
	require.True(t, unbounded.Matches("99.0.0"))
}

func TestMatchSpec_StringRoundTrip(t *testing.T) {
	inputs := []string{
		"requests",
		"requests >=2.0",
		"requests[security,socks] >=2.0, <3.0",
		"forge::numpy ~1.20",
		"forge::numpy[dev]",
	}

	for _, input := range inputs {
		spec := domain.MustParseMatchSpec(input)
		again, err := domain.ParseMatchSpec(spec.String())
		require.NoError(t, err)
		require.Equal(t, spec, again)
	}
}
