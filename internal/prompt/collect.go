package prompt

import (
	"fmt"
	"io"

	"github.com/syhner/copy-template/internal/manifest"
)

// Questions asked by Collect.
const (
	DestinationQuestion = "Choose a directory name to hold the template (defaults to current working directory)"
	TemplateQuestion    = "Choose a template:"
	InstallQuestion     = "Do you want to install dependencies for the app?"
)

// TemplateLister returns the names of the templates available right now.
type TemplateLister interface {
	List() ([]string, error)
}

// Configuration is everything a run needs, collected once and never persisted.
type Configuration struct {
	Destination string
	Template    string
	InstallDeps bool
}

// Collector gathers a Configuration interactively.
type Collector struct {
	p *Prompter
}

// NewCollector returns a Collector reading answers from r and writing
// questions to w.
func NewCollector(r io.Reader, w io.Writer) *Collector {
	return &Collector{p: NewPrompter(r, w)}
}

// Reader returns the input left over after the questions were answered.
func (c *Collector) Reader() io.Reader {
	return c.p.Reader()
}

// Collect asks for the destination, the template and whether to install
// dependencies, in that order. The template list is fetched from lister
// when the template question is asked.
func (c *Collector) Collect(lister TemplateLister) (*Configuration, error) {
	dest, err := c.p.Input(DestinationQuestion, manifest.DefaultDestination)
	if err != nil {
		return nil, fmt.Errorf("reading destination: %w", err)
	}

	names, err := lister.List()
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("listing templates: no templates available")
	}

	idx, err := c.p.Select(TemplateQuestion, names)
	if err != nil {
		return nil, fmt.Errorf("selecting template: %w", err)
	}

	install, err := c.p.Confirm(InstallQuestion, false)
	if err != nil {
		return nil, fmt.Errorf("confirming dependency installation: %w", err)
	}

	return &Configuration{
		Destination: dest,
		Template:    names[idx],
		InstallDeps: install,
	}, nil
}
