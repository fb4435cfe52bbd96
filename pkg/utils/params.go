package utils

import (
	"strconv"

	apperrors "gearguard/pkg/errors"

	"github.com/labstack/echo/v4"
)

// ParseIDParam читает числовой path-параметр; мусор в URL — это 400, а не 500.
func ParseIDParam(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.NewInvalidInputError("некорректный идентификатор '%s'", c.Param(name))
	}
	return id, nil
}
