package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jiyoungv/haru/internal/datekey"
	"github.com/jiyoungv/haru/internal/store"
)

// OutputFormat represents different output formats
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatJSON    OutputFormat = "json"
	FormatQuiet   OutputFormat = "quiet"
)

// RenderConfig contains configuration for output rendering
type RenderConfig struct {
	Format OutputFormat
	Color  bool
	ShowID bool
}

// DefaultRenderConfig returns a default render configuration
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Format: FormatDefault,
		Color:  true,
		ShowID: false,
	}
}

// Styles contains lipgloss styles for different elements
type Styles struct {
	Title   lipgloss.Style
	Time    lipgloss.Style
	ID      lipgloss.Style
	Checked lipgloss.Style
	Empty   lipgloss.Style
}

// Renderer handles output formatting for day listings.
type Renderer struct {
	config *RenderConfig
	styles *Styles
}

// NewRenderer creates a new renderer with the given config
func NewRenderer(config *RenderConfig) *Renderer {
	if config == nil {
		config = DefaultRenderConfig()
	}
	return &Renderer{config: config, styles: initStyles(config.Color)}
}

func initStyles(color bool) *Styles {
	styles := &Styles{}
	if color {
		styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
		styles.Time = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA"))
		styles.ID = lipgloss.NewStyle().Faint(true)
		styles.Checked = lipgloss.NewStyle().Faint(true).Strikethrough(true)
		styles.Empty = lipgloss.NewStyle().Faint(true)
	} else {
		styles.Title = lipgloss.NewStyle().Bold(true)
		styles.Time = lipgloss.NewStyle()
		styles.ID = lipgloss.NewStyle()
		styles.Checked = lipgloss.NewStyle()
		styles.Empty = lipgloss.NewStyle()
	}
	return styles
}

type dayListing struct {
	Date   datekey.Key      `json:"date"`
	Events []store.Event    `json:"events,omitempty"`
	Todos  []store.TodoItem `json:"todos,omitempty"`
}

// RenderEvents formats one day's events.
func (r *Renderer) RenderEvents(k datekey.Key, events []store.Event) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		b, err := json.MarshalIndent(dayListing{Date: k, Events: events}, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	case FormatQuiet:
		var sb strings.Builder
		for _, ev := range events {
			fmt.Fprintf(&sb, "%s\t%s-%s\t%s\n", ev.ID, ev.StartTime, ev.EndTime, ev.Title)
		}
		return sb.String(), nil
	}

	var sb strings.Builder
	sb.WriteString(r.styles.Title.Render(string(k)) + "\n")
	if len(events) == 0 {
		sb.WriteString(r.styles.Empty.Render("  no events") + "\n")
		return sb.String(), nil
	}
	for _, ev := range events {
		line := fmt.Sprintf("  %s  %s",
			r.styles.Time.Render(ev.StartTime+"-"+ev.EndTime), ev.Title)
		if r.config.ShowID {
			line += "  " + r.styles.ID.Render(ev.ID)
		}
		sb.WriteString(line + "\n")
	}
	return sb.String(), nil
}

// RenderTodos formats one day's checklist. Numbering counts only
// non-empty items, the way the list pane shows them.
func (r *Renderer) RenderTodos(k datekey.Key, todos []store.TodoItem) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		b, err := json.MarshalIndent(dayListing{Date: k, Todos: todos}, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	case FormatQuiet:
		var sb strings.Builder
		for _, item := range todos {
			mark := " "
			if item.Checked {
				mark = "x"
			}
			fmt.Fprintf(&sb, "%s\t[%s]\t%s\n", item.ID, mark, item.Content)
		}
		return sb.String(), nil
	}

	var sb strings.Builder
	sb.WriteString(r.styles.Title.Render(string(k)) + "\n")
	if len(todos) == 0 {
		sb.WriteString(r.styles.Empty.Render("  no todos") + "\n")
		return sb.String(), nil
	}
	n := 0
	for _, item := range todos {
		if strings.TrimSpace(item.Content) == "" {
			continue
		}
		n++
		mark := "[ ]"
		content := item.Content
		if item.Checked {
			mark = "[v]"
			content = r.styles.Checked.Render(content)
		}
		line := fmt.Sprintf("  %d. %s %s", n, mark, content)
		if r.config.ShowID {
			line += "  " + r.styles.ID.Render(item.ID)
		}
		sb.WriteString(line + "\n")
	}
	return sb.String(), nil
}
