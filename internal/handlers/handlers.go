// Package handlers turns form posts into store writes and store reads into
// rendered pages.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/valeriaulyamaeva/personal-tracker/internal/database"
	"github.com/valeriaulyamaeva/personal-tracker/internal/form"
)

const genericFailure = "Something went wrong. Please try again."

type Handler struct {
	db  database.DBTX
	log *logrus.Logger
	now func() time.Time
}

func New(db database.DBTX, log *logrus.Logger) *Handler {
	return &Handler{db: db, log: log, now: time.Now}
}

// WithClock replaces the time source used for completion timestamps.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

// postForm parses the urlencoded body of a write request.
func (h *Handler) postForm(c *gin.Context) (*form.Form, bool) {
	if err := c.Request.ParseForm(); err != nil {
		h.badRequest(c, err)
		return nil, false
	}
	return form.New(c.Request.PostForm), true
}

func (h *Handler) badRequest(c *gin.Context, err error) {
	h.log.WithFields(logrus.Fields{
		"route": c.FullPath(),
		"error": err.Error(),
	}).Info("некорректные данные формы")
	c.HTML(http.StatusBadRequest, "error.tmpl", errorPage{
		Status:  http.StatusBadRequest,
		Message: err.Error(),
	})
}

// storeFailure logs a failed statement and answers with a generic 500 page.
func (h *Handler) storeFailure(c *gin.Context, err error) {
	fields := logrus.Fields{
		"route": c.FullPath(),
		"error": err.Error(),
	}
	if name, ok := database.ConstraintName(err); ok {
		fields["constraint"] = name
	}
	h.log.WithFields(fields).Error("ошибка операции с БД")
	c.HTML(http.StatusInternalServerError, "error.tmpl", errorPage{
		Status:  http.StatusInternalServerError,
		Message: genericFailure,
	})
}

func (h *Handler) storeFailureJSON(c *gin.Context, err error) {
	h.log.WithFields(logrus.Fields{
		"route": c.FullPath(),
		"error": err.Error(),
	}).Error("ошибка операции с БД")
	c.JSON(http.StatusInternalServerError, gin.H{"error": genericFailure})
}

// noRow notes a write that matched nothing; it is not an error.
func (h *Handler) noRow(c *gin.Context) {
	h.log.WithFields(logrus.Fields{
		"route": c.FullPath(),
		"id":    c.Request.PostForm.Get("id"),
	}).Debug("запись не найдена")
}

func redirect(c *gin.Context, target string) {
	c.Redirect(http.StatusFound, target)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Ping reports whether the store answers.
func (h *Handler) Ping(c *gin.Context) {
	p, ok := h.db.(pinger)
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	if err := p.Ping(c.Request.Context()); err != nil {
		h.log.WithError(err).Warn("БД не отвечает")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
