package routes

import (
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/valeriaulyamaeva/personal-tracker/internal/handlers"
	"github.com/valeriaulyamaeva/personal-tracker/web"
)

// SetupRouter wires every page, form action and JSON endpoint.
func SetupRouter(h *handlers.Handler, log *logrus.Logger, tmpl *template.Template) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log))
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", web.Static())

	// finance
	r.GET("/", h.Overview)
	r.GET("/transactions", h.Transactions)
	r.GET("/debts", h.Debts)
	r.GET("/fixed-expenses", h.FixedExpenses)
	r.GET("/categories", h.Categories)
	r.GET("/settings", h.Settings)
	r.POST("/add-transaction", h.AddTransaction)
	r.POST("/add-category", h.AddCategory)
	r.POST("/add-debt", h.AddDebt)
	r.POST("/add-fixed-expense", h.AddFixedExpense)
	r.POST("/set-initial-balance", h.SetInitialBalance)

	// health
	r.GET("/health", h.Health)
	r.POST("/add-workout-plan", h.AddWorkoutPlan)
	r.POST("/add-workout-log", h.AddWorkoutLog)

	// stocks
	r.GET("/stocks", h.Stocks)
	r.POST("/add-stock", h.AddStock)
	r.POST("/update-stock-price", h.UpdateStockPrice)

	// goals
	r.GET("/goals", h.Goals)
	r.POST("/add-goal", h.AddGoal)
	r.POST("/update-goal-progress", h.UpdateGoalProgress)
	r.POST("/delete-goal", h.DeleteGoal)

	api := r.Group("/api")
	{
		api.GET("/overview", h.OverviewJSON)
		api.GET("/stocks", h.StocksJSON)
		api.GET("/goals", h.GoalsJSON)
	}
	r.GET("/ping", h.Ping)

	return r
}

// RequestLogger logs one line per request.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		})
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("запрос")
		case c.Writer.Status() >= 400:
			entry.Warn("запрос")
		default:
			entry.Info("запрос")
		}
	}
}
