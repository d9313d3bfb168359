package keyboards

import (
	"gopkg.in/telebot.v3"
)

const PickDepartment = "pick_dept"

const perRow = 3

// BuildDepartmentKeyboard lays departments out three per row; each button
// carries the department name as its callback payload.
func BuildDepartmentKeyboard(departments []string) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	if len(departments) == 0 {
		return "No departments yet. Add someone with: add <name> to <department>", markup
	}

	rows := []telebot.Row{}
	row := telebot.Row{}
	for _, dept := range departments {
		row = append(row, markup.Data(dept, PickDepartment, dept))
		if len(row) == perRow {
			rows = append(rows, row)
			row = telebot.Row{}
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	markup.Inline(rows...)
	return "Pick a department:", markup
}
