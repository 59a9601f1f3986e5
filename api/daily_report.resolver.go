package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) dailyReport(c *gin.Context) {
	var coinID *string
	if coin := c.Query("coin"); coin != "" {
		coinID = &coin
	}

	report, err := m.ReportService.GetDailyReport(c.Request.Context(), coinID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, report)
}
