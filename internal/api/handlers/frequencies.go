package handlers

import (
	"net/http"

	"ppa-valuation/internal/api/models"
	"ppa-valuation/internal/timeutil"

	"github.com/gin-gonic/gin"
)

// ListFrequencies handles GET /api/v1/frequencies
func ListFrequencies(c *gin.Context) {
	freqs := timeutil.Frequencies()
	out := make([]models.FrequencyInfo, 0, len(freqs))
	for _, f := range freqs {
		n, err := timeutil.PeriodsPerYear(f)
		if err != nil {
			continue
		}
		out = append(out, models.FrequencyInfo{
			Name:           string(f),
			PeriodsPerYear: n,
		})
	}
	c.JSON(http.StatusOK, models.FrequenciesResponse{Frequencies: out})
}
