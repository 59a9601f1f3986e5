package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) priceReport(c *gin.Context) {
	report, err := m.ReportService.GetPriceReport(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, report)
}
