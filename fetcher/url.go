package fetcher

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

var (
	ErrEmptyInput    = errors.New("empty input")
	ErrNotDiscogsURL = errors.New("please enter a URL from www.discogs.com")
	ErrNotReleaseURL = errors.New("unable to process the given URL; if attempting to load a master release, please use a specific release version instead")
)

var discogsHosts = []string{"www.discogs.com", "discogs.com"}

// ParseReleaseURL extracts the numeric release id from a Discogs release
// page URL. Scheme-less input ("discogs.com/...", "www.discogs.com/...") is
// accepted as well.
func ParseReleaseURL(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrEmptyInput
	}

	path, err := releasePath(raw)
	if err != nil {
		return 0, err
	}

	// The path starts with "/", so the first segment is empty.
	segments := strings.Split(path, "/")
	if len(segments) < 3 || segments[1] != "release" {
		return 0, ErrNotReleaseURL
	}

	idPart, _, _ := strings.Cut(segments[2], "-")
	id, err := strconv.Atoi(idPart)
	if err != nil || id <= 0 {
		return 0, ErrNotReleaseURL
	}
	return id, nil
}

func releasePath(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", ErrNotDiscogsURL
	}

	switch {
	case u.Scheme == "http" || u.Scheme == "https":
		for _, host := range discogsHosts {
			if u.Host == host {
				return u.Path, nil
			}
		}
	case u.Scheme == "" && u.Host == "":
		for _, host := range discogsHosts {
			if strings.HasPrefix(u.Path, host+"/") {
				return strings.TrimPrefix(u.Path, host), nil
			}
		}
	}
	return "", ErrNotDiscogsURL
}
