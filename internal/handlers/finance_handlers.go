package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/valeriaulyamaeva/personal-tracker/internal/database"
	"github.com/valeriaulyamaeva/personal-tracker/models"
)

// loadOverview tolerates an unparsable initial balance: it is shown as zero
// and a warning is logged.
func (h *Handler) loadOverview(c *gin.Context) (*database.Overview, error) {
	overview, err := database.GetOverview(c.Request.Context(), h.db)
	if errors.Is(err, database.ErrBadSettingValue) {
		h.log.WithFields(logrus.Fields{
			"route": c.FullPath(),
			"key":   models.InitialBalanceKey,
		}).Warn("начальный баланс не является числом, используется 0")
		return overview, nil
	}
	return overview, err
}

func (h *Handler) Overview(c *gin.Context) {
	overview, err := h.loadOverview(c)
	if err != nil {
		h.storeFailure(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", overviewPage{
		ActivePage: "overview",
		Overview:   *overview,
	})
}

func (h *Handler) Transactions(c *gin.Context) {
	ctx := c.Request.Context()
	transactions, err := database.GetAllTransactions(ctx, h.db)
	if err != nil {
		h.storeFailure(c, err)
		return
	}
	categories, err := database.GetAllCategories(ctx, h.db)
	if err != nil {
		h.storeFailure(c, err)
		return
	}
	c.HTML(http.StatusOK, "transactions.tmpl", transactionsPage{
		ActivePage:   "transactions",
		Transactions: transactions,
		Categories:   categories,
	})
}

func (h *Handler) Debts(c *gin.Context) {
	debts, err := database.GetAllDebts(c.Request.Context(), h.db)
	if err != nil {
		h.storeFailure(c, err)
		return
	}
	c.HTML(http.StatusOK, "debts.tmpl", debtsPage{ActivePage: "debts", Debts: debts})
}

func (h *Handler) FixedExpenses(c *gin.Context) {
	expenses, err := database.GetAllFixedExpenses(c.Request.Context(), h.db)
	if err != nil {
		h.storeFailure(c, err)
		return
	}
	c.HTML(http.StatusOK, "fixed-expenses.tmpl", fixedExpensesPage{
		ActivePage:    "fixed-expenses",
		FixedExpenses: expenses,
	})
}

func (h *Handler) Categories(c *gin.Context) {
	categories, err := database.GetAllCategories(c.Request.Context(), h.db)
	if err != nil {
		h.storeFailure(c, err)
		return
	}
	c.HTML(http.StatusOK, "categories.tmpl", categoriesPage{
		ActivePage: "categories",
		Categories: categories,
	})
}

func (h *Handler) Settings(c *gin.Context) {
	balance, err := database.GetInitialBalance(c.Request.Context(), h.db)
	if errors.Is(err, database.ErrBadSettingValue) {
		h.log.WithField("key", models.InitialBalanceKey).Warn("начальный баланс не является числом, используется 0")
		balance, err = decimal.Zero, nil
	}
	if err != nil {
		h.storeFailure(c, err)
		return
	}
	c.HTML(http.StatusOK, "settings.tmpl", settingsPage{
		ActivePage:     "settings",
		InitialBalance: balance,
	})
}

func (h *Handler) AddTransaction(c *gin.Context) {
	f, ok := h.postForm(c)
	if !ok {
		return
	}
	transaction := models.Transaction{
		Date:       f.Date("date"),
		Type:       f.Valid("type", models.ValidEntryType, "must be income or expense"),
		CategoryID: f.OptionalInt("category_id"),
		Amount:     f.Decimal("amount"),
		Detail:     f.OptionalString("detail"),
	}
	if transaction.CategoryID != nil && *transaction.CategoryID <= 0 {
		transaction.CategoryID = nil
	}
	if err := f.Err(); err != nil {
		h.badRequest(c, err)
		return
	}

	if err := database.CreateTransaction(c.Request.Context(), h.db, &transaction); err != nil {
		h.storeFailure(c, err)
		return
	}
	redirect(c, "/")
}

func (h *Handler) AddCategory(c *gin.Context) {
	f, ok := h.postForm(c)
	if !ok {
		return
	}
	category := models.Category{
		Name: f.String("name"),
		Type: f.Valid("type", models.ValidEntryType, "must be income or expense"),
	}
	if err := f.Err(); err != nil {
		h.badRequest(c, err)
		return
	}

	if err := database.CreateCategory(c.Request.Context(), h.db, &category); err != nil {
		h.storeFailure(c, err)
		return
	}
	redirect(c, "/")
}

func (h *Handler) AddDebt(c *gin.Context) {
	f, ok := h.postForm(c)
	if !ok {
		return
	}
	debt := models.Debt{
		Name:           f.String("name"),
		Amount:         f.Decimal("amount"),
		MonthlyPayment: f.OptionalDecimal("monthly_payment"),
		DueDate:        f.OptionalDate("due_date"),
		Note:           f.OptionalString("note"),
	}
	if err := f.Err(); err != nil {
		h.badRequest(c, err)
		return
	}

	if err := database.CreateDebt(c.Request.Context(), h.db, &debt); err != nil {
		h.storeFailure(c, err)
		return
	}
	redirect(c, "/")
}

func (h *Handler) AddFixedExpense(c *gin.Context) {
	f, ok := h.postForm(c)
	if !ok {
		return
	}
	expense := models.FixedExpense{
		Name:    f.String("name"),
		Amount:  f.Decimal("amount"),
		PayDate: f.OptionalInt("pay_date"),
		Note:    f.OptionalString("note"),
	}
	f.RangePtr("pay_date", expense.PayDate, 1, 31)
	if err := f.Err(); err != nil {
		h.badRequest(c, err)
		return
	}

	if err := database.CreateFixedExpense(c.Request.Context(), h.db, &expense); err != nil {
		h.storeFailure(c, err)
		return
	}
	redirect(c, "/")
}

func (h *Handler) SetInitialBalance(c *gin.Context) {
	f, ok := h.postForm(c)
	if !ok {
		return
	}
	amount := f.Decimal("amount")
	if err := f.Err(); err != nil {
		h.badRequest(c, err)
		return
	}

	if err := database.SetInitialBalance(c.Request.Context(), h.db, amount); err != nil {
		h.storeFailure(c, err)
		return
	}
	redirect(c, "/")
}

// OverviewJSON serves the overview figures for scripts and dashboards.
func (h *Handler) OverviewJSON(c *gin.Context) {
	overview, err := h.loadOverview(c)
	if err != nil {
		h.storeFailureJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
