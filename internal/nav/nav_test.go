package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"", "index"},
		{"/", "index"},
		{"/esempi-di-siti", "esempi-di-siti"},
		{"/esempi-di-siti/", "esempi-di-siti"},
		{"/esempi-di-siti?cat=Auto&p=2", "esempi-di-siti"},
		{"/Esempi-Di-Siti#examplesGrid", "esempi-di-siti"},
		{"/demo/PREMIUM", "premium"},
		{"https://www.localtop.it/onboarding?piano=BASE", "onboarding"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, NormalizePath(c.in), "input %q", c.in)
	}
}

func TestBuildMarksActiveEntry(t *testing.T) {
	t.Parallel()

	items := Build("/esempi-di-siti?cat=Ristorante")
	var active []string
	for _, it := range items {
		if it.Active {
			active = append(active, it.Href)
		}
	}
	require.Equal(t, []string{"/esempi-di-siti"}, active)
}

func TestBuildRootOnlyActiveOnHome(t *testing.T) {
	t.Parallel()

	for _, it := range Build("/") {
		require.Equal(t, it.Href == "/", it.Active, "href %s", it.Href)
	}
	for _, it := range Build("/onboarding") {
		require.Equal(t, it.Href == "/onboarding", it.Active, "href %s", it.Href)
	}
}
