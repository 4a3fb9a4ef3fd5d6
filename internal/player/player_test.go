package player

import (
	"errors"
	"testing"

	"github.com/mmcdole/flixhub/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestEmbedURL(t *testing.T) {
	t.Parallel()

	movie := domain.MediaKey{ID: 550, Type: domain.MediaTypeMovie}
	show := domain.MediaKey{ID: 1399, Type: domain.MediaTypeTV}

	tests := []struct {
		name     string
		target   domain.PlayTarget
		expected string
	}{
		{"movie server 1", domain.PlayTarget{Media: movie, Server: domain.Server1}, "https://vidsrc.to/embed/movie/550"},
		{"movie server 2", domain.PlayTarget{Media: movie, Server: domain.Server2}, "https://vidsrc.me/embed/movie/550"},
		{"episode server 1", domain.PlayTarget{Media: show, Server: domain.Server1, Season: 2, Episode: 5}, "https://vidsrc.to/embed/tv/1399/2/5"},
		{"episode server 2", domain.PlayTarget{Media: show, Server: domain.Server2, Season: 3, Episode: 1}, "https://vidsrc.me/embed/tv/1399/3/1"},
		{"show defaults to pilot", domain.PlayTarget{Media: show, Server: domain.Server1}, "https://vidsrc.to/embed/tv/1399/1/1"},
	}

	for _, tc := range tests {
		got, err := EmbedURL(tc.target)
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.expected, got, tc.name)
	}
}

func TestEmbedURLRejectsBadTargets(t *testing.T) {
	_, err := EmbedURL(domain.PlayTarget{Media: domain.MediaKey{ID: 1, Type: "person"}, Server: domain.Server1})
	require.ErrorIs(t, err, domain.ErrInvalidMediaType)

	_, err = EmbedURL(domain.PlayTarget{Media: domain.MediaKey{ID: 1, Type: domain.MediaTypeMovie}, Server: 7})
	require.Error(t, err)

	_, err = EmbedURL(domain.PlayTarget{Media: domain.MediaKey{Type: domain.MediaTypeMovie}, Server: domain.Server1})
	require.Error(t, err)
}

type started struct {
	name string
	args []string
}

func fakeLauncher(command, goos string, onPath map[string]bool, fail map[string]bool) (*Launcher, *[]started) {
	var calls []started
	l := NewLauncher(command, nil, nil)
	l.goos = goos
	l.lookPath = func(name string) (string, error) {
		if onPath[name] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
	l.start = func(name string, args ...string) error {
		calls = append(calls, started{name: name, args: args})
		if fail[name] {
			return errors.New("exec failed")
		}
		return nil
	}
	return l, &calls
}

func TestLauncherConfiguredBrowser(t *testing.T) {
	l, calls := fakeLauncher("librewolf", "linux", nil, nil)
	l.args = []string{"--new-window"}

	require.NoError(t, l.Launch("https://vidsrc.to/embed/movie/1"))
	require.Equal(t, []started{{name: "librewolf", args: []string{"--new-window", "https://vidsrc.to/embed/movie/1"}}}, *calls)
}

func TestLauncherConfiguredMacApp(t *testing.T) {
	l, calls := fakeLauncher("Safari", "darwin", nil, nil)

	require.NoError(t, l.Launch("u"))
	require.Equal(t, []started{{name: "open", args: []string{"-a", "Safari", "u"}}}, *calls)
}

func TestLauncherDetectsCandidate(t *testing.T) {
	l, calls := fakeLauncher("", "linux", map[string]bool{"chromium": true}, nil)

	require.NoError(t, l.Launch("u"))
	require.Equal(t, []started{{name: "chromium", args: []string{"u"}}}, *calls)
}

func TestLauncherFallsBackToSystemDefault(t *testing.T) {
	l, calls := fakeLauncher("", "linux", map[string]bool{"firefox": true}, map[string]bool{"firefox": true})

	require.NoError(t, l.Launch("u"))
	require.Len(t, *calls, 2)
	require.Equal(t, "xdg-open", (*calls)[1].name)

	l, calls = fakeLauncher("", "windows", nil, nil)
	require.NoError(t, l.Launch("u"))
	require.Equal(t, []started{{name: "cmd", args: []string{"/c", "start", "", "u"}}}, *calls)
}

func TestLauncherReportsFailure(t *testing.T) {
	l, _ := fakeLauncher("", "linux", nil, map[string]bool{"xdg-open": true})
	require.Error(t, l.Launch("u"))
}

type recordingLauncher struct {
	urls []string
	err  error
}

func (r *recordingLauncher) Launch(url string) error {
	r.urls = append(r.urls, url)
	return r.err
}

func TestServicePlay(t *testing.T) {
	require := require.New(t)

	rec := &recordingLauncher{}
	svc := NewService(rec, nil)

	url, err := svc.Play(domain.PlayTarget{
		Media:   domain.MediaKey{ID: 1399, Type: domain.MediaTypeTV},
		Server:  domain.Server2,
		Season:  1,
		Episode: 1,
	})
	require.NoError(err)
	require.Equal("https://vidsrc.me/embed/tv/1399/1/1", url)
	require.Equal([]string{url}, rec.urls)

	rec.err = errors.New("no browser")
	_, err = svc.Play(domain.PlayTarget{Media: domain.MediaKey{ID: 2, Type: domain.MediaTypeMovie}, Server: domain.Server1})
	require.Error(err)
}
