package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// FallbackFailure is shown when a failure carries no message of its own.
const FallbackFailure = "Something went wrong!"

// Reporter narrates the steps of a run. Each step sets a message and ends
// with Succeed or Fail.
type Reporter interface {
	SetMessage(text string)
	Succeed()
	Fail(text string)
}

var (
	colorPending = lipgloss.Color("3")
	colorSuccess = lipgloss.Color("2")
	colorFailure = lipgloss.Color("1")
)

const (
	glyphPending = "•"
	glyphSuccess = "✔"
	glyphFailure = "✖"
)

// Status is a line-based Reporter. It keeps the current message and color.
// The first message of a step prints a pending line; later messages of the
// same step only replace the text printed by Succeed or Fail.
type Status struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	message  string
	color    lipgloss.Color
	active   bool
}

// NewStatus writes to out. The color profile is detected from out unless
// overridden with termenv.WithProfile.
func NewStatus(out io.Writer, opts ...termenv.OutputOption) *Status {
	return &Status{
		out:      out,
		renderer: lipgloss.NewRenderer(out, opts...),
		color:    colorPending,
	}
}

func (s *Status) SetMessage(text string) {
	s.message = text
	s.color = colorPending
	if !s.active {
		s.active = true
		s.print(glyphPending)
	}
}

func (s *Status) Succeed() {
	s.active = false
	s.color = colorSuccess
	s.print(glyphSuccess)
}

func (s *Status) Fail(text string) {
	if text != "" {
		s.message = text
	}
	if s.message == "" {
		s.message = FallbackFailure
	}
	s.active = false
	s.color = colorFailure
	s.print(glyphFailure)
}

// Message returns the text of the current step.
func (s *Status) Message() string {
	return s.message
}

// Println writes a plain line between status transitions.
func (s *Status) Println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Status) print(glyph string) {
	style := s.renderer.NewStyle().Foreground(s.color)
	fmt.Fprintf(s.out, "%s %s\n", style.Render(glyph), style.Render(s.message))
}
