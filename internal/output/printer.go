// Package output renders response diagnostics and bodies to the terminal.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/tidwall/pretty"
)

// ColorMode controls when ANSI colors are emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ErrInvalidJSON is returned when a body claimed to be JSON does not parse.
var ErrInvalidJSON = errors.New("invalid json")

// Printer writes diagnostics to Err and bodies to Out.
type Printer struct {
	out   io.Writer
	err   io.Writer
	color bool
	value lipgloss.Style
}

// NewPrinter builds a Printer for the given streams.
func NewPrinter(out, errOut io.Writer, mode ColorMode) *Printer {
	r := lipgloss.NewRenderer(errOut)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	color := mode == ColorAlways || (mode != ColorNever && isTerminal(out))
	return &Printer{
		out:   out,
		err:   errOut,
		color: color,
		value: r.NewStyle().Foreground(lipgloss.Color("2")).TabWidth(lipgloss.NoTabConversion),
	}
}

// Status prints the response status code.
func (p *Printer) Status(code int) {
	fmt.Fprintf(p.err, "Status: %s\n", p.value.Render(fmt.Sprint(code)))
}

// ContentType prints the response content type.
func (p *Printer) ContentType(v string) {
	fmt.Fprintf(p.err, "Content-Type: %s\n", p.value.Render(v))
}

// JSON pretty-prints body, colored when the output stream allows it.
func (p *Printer) JSON(body []byte) error {
	if !json.Valid(body) {
		return ErrInvalidJSON
	}
	formatted := pretty.Pretty(body)
	if p.color {
		formatted = pretty.Color(formatted, nil)
	}
	_, err := p.out.Write(formatted)
	return err
}

// Raw prints body verbatim followed by a newline.
func (p *Printer) Raw(body string) error {
	_, err := fmt.Fprintln(p.out, body)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
