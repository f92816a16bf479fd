package router

import (
	"strconv"

	"github.com/mmynk/budgetbot/internal/format"
	"github.com/mmynk/budgetbot/internal/models"
)

func rows(labels ...[]string) *Keyboard {
	kb := &Keyboard{}
	for _, row := range labels {
		var buttons []Button
		for _, l := range row {
			buttons = append(buttons, Button{Text: l})
		}
		kb.Rows = append(kb.Rows, buttons)
	}
	return kb
}

// MainMenu is the root reply keyboard.
func MainMenu() *Keyboard {
	return rows(
		[]string{BtnAddIncome, BtnAddExpense},
		[]string{BtnBalance, BtnReport},
		[]string{BtnDebts, BtnSettings},
		[]string{BtnHistory},
	)
}

// SkipKeyboard offers skip and cancel.
func SkipKeyboard() *Keyboard {
	return rows([]string{BtnSkip}, []string{BtnCancel})
}

// CancelKeyboard offers only cancel.
func CancelKeyboard() *Keyboard {
	return rows([]string{BtnCancel})
}

// CategoryKeyboard lists categories two per row, followed by the add and
// cancel buttons.
func CategoryKeyboard(cats []*models.Category) *Keyboard {
	kb := &Keyboard{}
	for i := 0; i < len(cats); i += 2 {
		row := []Button{{Text: cats[i].Name}}
		if i+1 < len(cats) {
			row = append(row, Button{Text: cats[i+1].Name})
		}
		kb.Rows = append(kb.Rows, row)
	}
	kb.Rows = append(kb.Rows, []Button{{Text: BtnAddCategory}}, []Button{{Text: BtnCancel}})
	return kb
}

// DebtMenu is the debt management reply keyboard.
func DebtMenu() *Keyboard {
	return rows(
		[]string{BtnAddLent, BtnAddOwe},
		[]string{BtnDebtList, BtnCloseDebt},
		[]string{BtnMainMenu},
	)
}

// SettingsMenu is the settings reply keyboard.
func SettingsMenu() *Keyboard {
	return rows([]string{BtnCategories}, []string{BtnMainMenu})
}

// CategoriesMenu picks which category list to manage.
func CategoriesMenu() *Keyboard {
	return rows([]string{BtnIncomeCategories, BtnExpenseCategories}, []string{BtnMainMenu})
}

// ReportPeriodKeyboard is the inline period picker.
func ReportPeriodKeyboard() *Keyboard {
	return &Keyboard{Inline: true, Rows: [][]Button{
		{{Text: "Сегодня", Data: cbReport + string(models.PeriodToday)}, {Text: "Неделя", Data: cbReport + string(models.PeriodWeek)}},
		{{Text: "Месяц", Data: cbReport + string(models.PeriodMonth)}, {Text: "Весь период", Data: cbReport + string(models.PeriodAll)}},
	}}
}

// DebtTypeKeyboard is the inline debt list filter.
func DebtTypeKeyboard() *Keyboard {
	return &Keyboard{Inline: true, Rows: [][]Button{
		{{Text: "Мне должны", Data: cbDebts + string(models.Lent)}, {Text: "Я должен", Data: cbDebts + string(models.Owe)}},
		{{Text: "Все долги", Data: cbDebts + debtsAll}},
	}}
}

// CloseDebtKeyboard has one inline button per unpaid debt.
func CloseDebtKeyboard(debts []*models.Debt) *Keyboard {
	kb := &Keyboard{Inline: true}
	for _, d := range debts {
		kb.Rows = append(kb.Rows, []Button{{
			Text: format.DebtButton(d),
			Data: cbPaid + strconv.FormatInt(d.ID, 10),
		}})
	}
	return kb
}

// CategoryActionsKeyboard offers deletion of custom categories and
// creation of a new one.
func CategoryActionsKeyboard(kind models.TransactionKind, cats []*models.Category) *Keyboard {
	kb := &Keyboard{Inline: true}
	for _, c := range cats {
		if c.IsDefault {
			continue
		}
		kb.Rows = append(kb.Rows, []Button{{
			Text: "🗑 " + c.Name,
			Data: cbCategoryDel + string(kind) + "_" + strconv.FormatInt(c.ID, 10),
		}})
	}
	kb.Rows = append(kb.Rows, []Button{{Text: BtnAddCategory, Data: cbCategoryAdd + string(kind)}})
	return kb
}
