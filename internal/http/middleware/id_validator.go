package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aliiaycicek/My-Portfolio/internal/dto"
)

// IDValidator проверяет, что параметр с указанным именем является положительным целым числом.
// Использование: router.GET("/skills/:id", IDValidator("id"), handler.Get)
func IDValidator(paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param(paramName)
		if idStr == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "параметр " + paramName + " обязателен",
			})
			return
		}

		if id, err := strconv.ParseInt(idStr, 10, 64); err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "параметр " + paramName + " должен быть положительным целым числом",
			})
			return
		}

		c.Next()
	}
}
