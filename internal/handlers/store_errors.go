package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/academia-backoffice/internal/httperr"
	infraRepo "github.com/BruksfildServices01/academia-backoffice/internal/infra/repository"
)

// respondDelete traduz os erros típicos de DELETE: registro inexistente
// e registro ainda referenciado (FK RESTRICT).
func respondDelete(c *gin.Context, err error, rows int64, notFound, inUse error) bool {
	if err != nil {
		if infraRepo.IsForeignKeyViolation(err) {
			httperr.Respond(c, inUse)
			return false
		}
		httperr.Respond(c, err)
		return false
	}
	if rows == 0 {
		httperr.Respond(c, notFound)
		return false
	}
	return true
}
