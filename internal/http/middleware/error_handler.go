package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aliiaycicek/My-Portfolio/internal/dto"
	"github.com/aliiaycicek/My-Portfolio/internal/logger"
	"github.com/aliiaycicek/My-Portfolio/internal/repository"
)

// ErrorHandler обрабатывает ошибки централизованно.
// Маскирует внутренние ошибки и возвращает понятные сообщения клиенту.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// ответ уже отправлен хэндлером
		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()

		statusCode := http.StatusInternalServerError
		message := "внутренняя ошибка сервера"

		logger.L().WithFields(logrus.Fields{
			"error":      err.Error(),
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(ContextRequestIDKey),
		}).Error("ошибка обработки запроса")

		switch {
		case errors.Is(err.Err, repository.ErrNotFound):
			statusCode = http.StatusNotFound
			message = "запись не найдена"
		case !containsInternalKeywords(err.Error()):
			errStr := err.Error()
			if contains(errStr, "неверный") || contains(errStr, "невалид") {
				statusCode = http.StatusBadRequest
				message = errStr
			}
		}

		c.JSON(statusCode, dto.ErrorResponse{Error: message})
	}
}

// containsInternalKeywords проверяет, содержит ли строка ключевые слова внутренних ошибок.
func containsInternalKeywords(s string) bool {
	keywords := []string{
		"sql:",
		"store:",
		"database",
		"connection",
		"timeout",
		"internal",
		"panic",
		"runtime",
	}

	for _, keyword := range keywords {
		if contains(s, keyword) {
			return true
		}
	}
	return false
}

// contains проверяет, содержит ли строка подстроку (case-insensitive).
func contains(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
