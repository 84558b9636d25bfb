package tui

// errorOverlayModel is the blocking alert. While it is open every key other
// than dismiss is swallowed.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n" + m.message + "\n\n" + helpStyle.Render(helpLine(keys.dismiss))
	return overlayBoxStyle.Render(content)
}
