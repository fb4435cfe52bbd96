package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "gearguard/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorBody — единый формат тела ошибки: {"error": "..."}.
// Формат зафиксирован контрактом API, не менять.
type ErrorBody struct {
	Error string `json:"error"`
}

func SuccessResponse(ctx echo.Context, code int, body interface{}) error {
	return ctx.JSON(code, body)
}

// ErrorResponse переводит внутренние ошибки в HTTP-ответ:
// 400 — валидация и нарушение ограничений БД, 404 — не найдено,
// 500 — все остальное (включая недоступность БД).
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return c.JSON(httpErr.Code, ErrorBody{Error: httpErr.Message})
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return c.JSON(echoErr.Code, ErrorBody{Error: fmt.Sprint(echoErr.Message)})
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorBody{Error: err.Error()})
	}

	var invalidInput *apperrors.InvalidInputError
	if errors.As(err, &invalidInput) {
		return c.JSON(http.StatusBadRequest, ErrorBody{Error: invalidInput.Message})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Поле '%s' не прошло проверку '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, ErrorBody{Error: "Ошибка валидации: " + strings.Join(msgs, "; ")})
	}

	// Нарушения ограничений БД (класс 23: unique, not null, foreign key)
	// отдаем клиенту как 400 с сообщением драйвера.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return c.JSON(http.StatusBadRequest, ErrorBody{Error: pgErr.Message})
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, ErrorBody{Error: "внутренняя ошибка сервера"})
}
