package tui

import (
	"github.com/MKhiriev/go-user-list/models"
	"github.com/charmbracelet/bubbles/table"
)

const tableHeight = 12

var userColumns = []table.Column{
	{Title: "ID", Width: 12},
	{Title: "Name", Width: 24},
	{Title: "Address", Width: 36},
}

func newUsersTable() table.Model {
	return table.New(
		table.WithColumns(userColumns),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)
}

// userRows renders users in response order.
func userRows(users []models.User) []table.Row {
	rows := make([]table.Row, 0, len(users))
	for _, u := range users {
		rows = append(rows, table.Row{
			fitText(u.ID, userColumns[0].Width),
			fitText(u.Name, userColumns[1].Width),
			fitText(u.Address, userColumns[2].Width),
		})
	}
	return rows
}
