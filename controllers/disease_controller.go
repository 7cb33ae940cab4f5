package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"go-smartagro/models"
	"go-smartagro/utils"
)

// DiseaseController serves the offline crop disease library.
type DiseaseController struct{}

// NewDiseaseController creates a new DiseaseController instance.
func NewDiseaseController() *DiseaseController {
	return &DiseaseController{}
}

// GetDiseases returns the library, optionally filtered by crop name
// substring.
func (c *DiseaseController) GetDiseases(ctx *gin.Context) {
	diseases := models.OfflineDiseases()

	crop := strings.TrimSpace(ctx.Query("crop"))
	if crop == "" {
		utils.Success(ctx, diseases)
		return
	}

	filtered := make([]models.DiseaseInfo, 0, len(diseases))
	for _, disease := range diseases {
		if strings.Contains(disease.CropName, crop) {
			filtered = append(filtered, disease)
		}
	}
	utils.Success(ctx, filtered)
}
