package handler

import (
	"errors"
	"net/http"
	"strconv"

	"minimal_api/internal/model"

	"github.com/gin-gonic/gin"
)

const pageParam = "pagina"

var (
	errInvalidPage = errors.New("pagina must be an integer")
	errInvalidID   = errors.New("id must be an integer")
)

func badRequest(c *gin.Context, msgs ...string) {
	c.JSON(http.StatusBadRequest, model.ValidationErrors{Messages: msgs})
}

// optionalPage reads ?pagina=; nil when absent
func optionalPage(c *gin.Context) (*int, error) {
	raw, ok := c.GetQuery(pageParam)
	if !ok || raw == "" {
		return nil, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errInvalidPage
	}
	return &page, nil
}

func pathID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}
