package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/valeriaulyamaeva/personal-tracker/internal/database"
	"github.com/valeriaulyamaeva/personal-tracker/models"
)

func (h *Handler) loadPortfolio(c *gin.Context) (models.Portfolio, error) {
	holdings, err := database.GetAllStockHoldings(c.Request.Context(), h.db)
	if err != nil {
		return models.Portfolio{}, err
	}
	return models.ValuePortfolio(holdings), nil
}

func (h *Handler) Stocks(c *gin.Context) {
	portfolio, err := h.loadPortfolio(c)
	if err != nil {
		h.storeFailure(c, err)
		return
	}
	c.HTML(http.StatusOK, "stocks.tmpl", stocksPage{
		ActivePage: "stocks",
		Portfolio:  portfolio,
	})
}

func (h *Handler) AddStock(c *gin.Context) {
	f, ok := h.postForm(c)
	if !ok {
		return
	}
	holding := models.StockHolding{
		Symbol:       f.String("symbol"),
		Name:         f.String("name"),
		Quantity:     f.Decimal("quantity"),
		BuyPrice:     f.Decimal("buy_price"),
		BuyDate:      f.Date("buy_date"),
		CurrentPrice: f.OptionalDecimal("current_price"),
		Note:         f.OptionalString("note"),
	}
	if err := f.Err(); err != nil {
		h.badRequest(c, err)
		return
	}

	if err := database.CreateStockHolding(c.Request.Context(), h.db, &holding); err != nil {
		h.storeFailure(c, err)
		return
	}
	redirect(c, "/stocks")
}

// UpdateStockPrice sets or, for a blank price, clears the market price.
func (h *Handler) UpdateStockPrice(c *gin.Context) {
	f, ok := h.postForm(c)
	if !ok {
		return
	}
	id := f.ID("id")
	price := f.OptionalDecimal("current_price")
	if err := f.Err(); err != nil {
		h.badRequest(c, err)
		return
	}

	if id == 0 {
		h.noRow(c)
		redirect(c, "/stocks")
		return
	}

	affected, err := database.UpdateStockPrice(c.Request.Context(), h.db, id, price)
	if err != nil {
		h.storeFailure(c, err)
		return
	}
	if affected == 0 {
		h.noRow(c)
	}
	redirect(c, "/stocks")
}

func (h *Handler) StocksJSON(c *gin.Context) {
	portfolio, err := h.loadPortfolio(c)
	if err != nil {
		h.storeFailureJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, portfolio)
}
