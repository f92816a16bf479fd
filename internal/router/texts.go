package router

// Button labels.
const (
	BtnAddIncome  = "➕ Добавить доход"
	BtnAddExpense = "➖ Добавить расход"
	BtnBalance    = "💰 Баланс"
	BtnReport     = "📊 Отчет"
	BtnDebts      = "📝 Долги"
	BtnSettings   = "⚙️ Настройки"
	BtnHistory    = "📜 История"

	BtnCancel      = "❌ Отмена"
	BtnSkip        = "⏭ Пропустить"
	BtnAddCategory = "➕ Добавить категорию"
	BtnMainMenu    = "🏠 Главное меню"

	BtnAddLent   = "➕ Мне должны"
	BtnAddOwe    = "➖ Я должен"
	BtnDebtList  = "📋 Список долгов"
	BtnCloseDebt = "✅ Закрыть долг"

	BtnCategories        = "📂 Управление категориями"
	BtnIncomeCategories  = "📈 Категории доходов"
	BtnExpenseCategories = "📉 Категории расходов"
)

// Replies and prompts.
const (
	msgGreeting = "Привет, %s!\n\nЯ помогу тебе управлять личным бюджетом.\n\nИспользуй меню ниже для работы с ботом:"
	msgHelp     = `📖 <b>Справка по командам:</b>

➕ <b>Добавить доход</b> - записать поступление денег
➖ <b>Добавить расход</b> - записать трату

💰 <b>Баланс</b> - посмотреть текущий баланс
📊 <b>Отчет</b> - получить детальный отчет за период
📜 <b>История</b> - последние операции

📝 <b>Долги</b> - управление долгами
⚙️ <b>Настройки</b> - настройки бота и категорий

<b>Команды:</b>
/start - начать работу
/help - справка
/history - последние операции
/cancel - отменить текущее действие`

	msgCancelled = "Действие отменено."
	msgMainMenu  = "Главное меню:"
	msgUnknown   = "Не понимаю. Воспользуйтесь меню ниже:"
	msgDone      = "Готово!"

	msgIncomeAmount     = "Введите сумму дохода:"
	msgExpenseAmount    = "Введите сумму расхода:"
	msgAmountPositive   = "Сумма должна быть положительной. Попробуйте еще раз:"
	msgAmountFormat     = "Неверный формат. Введите число (например: 1000 или 1500.50):"
	msgDebtAmountFormat = "Неверный формат. Введите число:"
	msgIncomeCategory   = "Выберите категорию дохода:"
	msgExpenseCategory  = "Выберите категорию расхода:"
	msgDescription      = "Введите описание (или нажмите 'Пропустить'):"

	msgCategoryName     = "Введите название новой категории:"
	msgCategoryExists   = "❌ Категория с таким названием уже существует. Попробуйте другое название:"
	msgCategoryReserved = "❌ Это название зарезервировано. Введите другое название:"
	msgCategoryAdded    = "✅ Категория '%s' добавлена!"
	msgCategoryDeleted  = "🗑 Категория '%s' удалена."
	msgCategoryDefault  = "Категории по умолчанию нельзя удалить."
	msgCategoryMissing  = "Категория не найдена."

	msgLentPerson  = "Введите имя человека, который должен вам:"
	msgOwePerson   = "Введите имя человека, которому вы должны:"
	msgPersonEmpty = "Имя не может быть пустым. Введите имя:"
	msgDebtAmount  = "Введите сумму долга:"
	msgDebtMissing = "Долг не найден или уже закрыт."
	msgPickDebt    = "Выберите погашенный долг:"

	msgReportMenu     = "Выберите период для отчета:"
	msgDebtMenu       = "Управление долгами:"
	msgDebtTypeMenu   = "Выберите тип долгов:"
	msgSettingsMenu   = "⚙️ Настройки:"
	msgCategoriesMenu = "Управление категориями:"
)
