package widgets

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/engine/lifecycle"
	"go.trai.ch/repute/internal/ui/style"
)

// markup writes HTML, remembering the first write error.
type markup struct {
	w   io.Writer
	err error
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// text writes untrusted content escaped.
func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

func (m *markup) attr(name, value string) {
	m.raw(" " + name + "=\"")
	m.text(value)
	m.raw("\"")
}

// url writes a sanitized URL attribute.
func (m *markup) url(name, value string) {
	m.attr(name, string(templ.URL(value)))
}

func (m *markup) open(tag, class string) {
	m.raw("<" + tag)
	m.attr("class", class)
	m.raw(">")
}

func (m *markup) close(tag string) {
	m.raw("</" + tag + ">")
}

// element writes <tag class="class">text</tag>.
func (m *markup) element(tag, class, text string) {
	m.open(tag, class)
	m.text(text)
	m.close(tag)
}

func (m *markup) image(class, src string) {
	m.raw("<img")
	m.attr("class", class)
	m.url("src", src)
	m.raw(" alt=\"\">")
}

// bar writes a progress bar filled to percent.
func (m *markup) bar(percent int) {
	percent = min(max(percent, 0), 100)
	m.raw(`<div class="repute-bar"><span style="width:` + strconv.Itoa(percent) + `%"></span></div>`)
}

func (m *markup) score(class string, score, maxScore int) {
	m.open("div", class)
	m.element("span", "repute-value", strconv.Itoa(score))
	m.element("span", "repute-max", "/ "+strconv.Itoa(maxScore))
	m.close("div")
}

// frame wraps body in the widget root element carrying kind, phase, theme and palette.
func frame[C, D any](v lifecycle.View[C, D], body func(*markup)) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := &markup{w: w}
		p := style.ForScheme(v.Theme == domain.ThemeDark)

		m.raw("<div")
		m.attr("class", "repute-card")
		m.attr("data-kind", string(v.Kind))
		m.attr("data-theme", string(v.Theme))
		m.attr("data-state", v.State.Phase.String())
		m.attr("style", "--repute-bg:"+string(p.Background)+
			";--repute-fg:"+string(p.Foreground)+
			";--repute-muted:"+string(p.Muted)+
			";--repute-accent:"+string(p.Accent)+
			";--repute-danger:"+string(p.Danger))
		m.raw(">")
		body(m)
		m.close("div")
		return m.err
	})
}

// chrome renders the loading and error phases shared by every widget.
type chrome[C, D any] struct{}

func (chrome[C, D]) RenderLoading(v lifecycle.View[C, D]) templ.Component {
	return frame(v, func(m *markup) {
		m.raw(`<div class="repute-loading" role="status" aria-live="polite">`)
		m.raw(`<span class="repute-spinner"></span>`)
		m.element("span", "repute-loading-text", "Loading…")
		m.close("div")
	})
}

func (chrome[C, D]) RenderError(v lifecycle.View[C, D]) templ.Component {
	return frame(v, func(m *markup) {
		m.raw(`<div class="repute-error" role="alert">`)
		m.element("span", "repute-error-icon", style.Warning)
		m.element("p", "repute-error-message", domain.UserMessage(v.State.Err))
		m.close("div")
	})
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}
