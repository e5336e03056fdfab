package embed

import (
	"errors"
	"fmt"
	"html"
	"net/url"
	"strings"

	"teacher-salary/internal/constants"
)

var ErrInvalidOrigin = errors.New("origin must be an absolute http(s) URL")

// Snippet is what a host page needs to show the calculator.
type Snippet struct {
	URL    string `json:"url"`
	Iframe string `json:"iframe"`
}

type Generator struct {
	origin string
	height int
	title  string
}

// NewGenerator falls back to the package defaults for a zero height or an empty title.
func NewGenerator(origin string, height int, title string) *Generator {
	if height <= 0 {
		height = constants.DefaultIframeHeight
	}
	if title == "" {
		title = constants.DefaultIframeTitle
	}
	return &Generator{origin: origin, height: height, title: title}
}

// Generate builds the snippet for origin, or for the configured origin when
// origin is empty.
func (g *Generator) Generate(origin string) (Snippet, error) {
	const op = "service.embed.Generate"

	if origin == "" {
		origin = g.origin
	}

	base, err := normalizeOrigin(origin)
	if err != nil {
		return Snippet{}, fmt.Errorf("%s: %w", op, err)
	}

	embedURL := fmt.Sprintf("%s/?%s=%s", base, constants.EmbedQueryKey, constants.EmbedQueryValue)
	iframe := fmt.Sprintf(
		`<iframe src="%s" width="100%%" height="%d" style="border:none; border-radius: 8px; overflow: hidden;" title="%s"></iframe>`,
		html.EscapeString(embedURL), g.height, html.EscapeString(g.title),
	)

	return Snippet{URL: embedURL, Iframe: iframe}, nil
}

func normalizeOrigin(origin string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(origin))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidOrigin, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidOrigin, origin)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("%w: %q has a query or fragment", ErrInvalidOrigin, origin)
	}

	return strings.TrimRight(u.Scheme+"://"+u.Host+u.EscapedPath(), "/"), nil
}
