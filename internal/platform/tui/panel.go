package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	buttonStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	messageStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
)

// panel holds the status, score and button text published by the renderer
// and the controller.
type panel struct {
	status string
	score  string
	button string
}

func (p *panel) SetStatus(text string) { p.status = text }
func (p *panel) SetScore(text string)  { p.score = text }
func (p *panel) SetButton(text string) { p.button = text }

// statusLine renders the title, status and score.
func (p *panel) statusLine() string {
	return titleStyle.Render("gridsnake") + "  " +
		labelStyle.Render("status ") + valueStyle.Render(p.status) + "  " +
		labelStyle.Render("score ") + valueStyle.Render(p.score)
}

// buttonView renders the control button.
func (p *panel) buttonView() string {
	return buttonStyle.Render(p.button)
}
