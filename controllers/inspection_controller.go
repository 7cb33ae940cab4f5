package controllers

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-smartagro/lifecycle"
	"go-smartagro/models"
	"go-smartagro/services"
	"go-smartagro/utils"
)

// maxVideoBytes caps uploaded videos; photos have no extra cap beyond
// the server's request limit.
const maxVideoBytes = 50 << 20

// inspectionTimeout bounds one visual analysis call.
const inspectionTimeout = 2 * time.Minute

// inspectionCaptions rotate on the inspection screen while analysis
// runs.
var inspectionCaptions = []string{
	"व्हिडिओ स्कॅन होत आहे...",
	"रोगाची लक्षणे शोधली जात आहेत...",
	"एआय पीक विश्लेषण करत आहे...",
	"उपचार योजना तयार होत आहे...",
	"प्रमाण मोजले जात आहे...",
}

// featureCaptions returns the progress captions for a feature; only
// the inspection screen has them.
func featureCaptions(feature string) []string {
	if feature == FeatureInspection {
		return inspectionCaptions
	}
	return nil
}

// CropInspector runs one visual diagnosis over uploaded media.
type CropInspector interface {
	InspectCrop(ctx context.Context, media []byte, mimeType string) (models.CropDiseaseResult, error)
}

// InspectionController handles AI crop inspection uploads.
type InspectionController struct {
	Inspector CropInspector
	Runners   *lifecycle.Registry
	Logger    *zap.Logger
}

// NewInspectionController creates a new InspectionController instance.
func NewInspectionController(inspector CropInspector, runners *lifecycle.Registry, logger *zap.Logger) *InspectionController {
	return &InspectionController{Inspector: inspector, Runners: runners, Logger: logger}
}

// Analyze accepts one photo or video upload and starts the visual
// diagnosis. Analysis runs in the background; the client polls the
// inspection status for the rotating caption and the final result.
func (c *InspectionController) Analyze(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	fileHeader, err := ctx.FormFile("media")
	if err != nil {
		utils.BadRequest(ctx, "media file is required")
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") && !strings.HasPrefix(mimeType, "video/") {
		utils.BadRequest(ctx, "media must be an image or a video")
		return
	}
	if strings.HasPrefix(mimeType, "video/") && fileHeader.Size > maxVideoBytes {
		utils.BadRequest(ctx, "व्हिडिओ ५०MB पेक्षा लहान असावा.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalServerError(ctx, "failed to read upload")
		return
	}
	defer file.Close()

	media, err := io.ReadAll(file)
	if err != nil {
		utils.InternalServerError(ctx, "failed to read upload")
		return
	}

	runner := c.Runners.For(userID, FeatureInspection, inspectionCaptions)
	if err := runner.Begin(); err != nil {
		utils.Conflict(ctx, "analysis already in flight")
		return
	}

	analysisID := uuid.NewString()
	go func() {
		analysisCtx, cancel := context.WithTimeout(context.Background(), inspectionTimeout)
		defer cancel()

		result, err := c.Inspector.InspectCrop(analysisCtx, media, mimeType)
		if err != nil {
			message, quota := services.LocalizedAIError(err)
			c.Logger.Warn("crop inspection failed",
				zap.String("analysisID", analysisID), zap.Error(err))
			runner.Fail(message, quota)
			return
		}
		runner.Succeed(result)
	}()

	snapshot := runner.Status()
	utils.Success(ctx, gin.H{
		"analysisId": analysisID,
		"state":      snapshot.State,
		"caption":    snapshot.Caption,
	})
}

// Status returns the inspection lifecycle snapshot.
func (c *InspectionController) Status(ctx *gin.Context) {
	userID := ctx.GetInt("userID")
	utils.Success(ctx, c.Runners.For(userID, FeatureInspection, inspectionCaptions).Status())
}

// ResultEditRequest carries local edits to a completed diagnosis. Only
// the treatment-facing fields are editable; edits are never sent back
// to the AI.
type ResultEditRequest struct {
	Treatment          *string        `json:"treatment"`
	PreventiveMeasures *string        `json:"preventiveMeasures"`
	FertilizerDetails  *models.Dosage `json:"fertilizerDetails"`
	HerbicideDetails   *models.Dosage `json:"herbicideDetails"`
	CompostDetails     *models.Dosage `json:"compostDetails"`
}

// UpdateResult applies edits to the last completed diagnosis.
func (c *InspectionController) UpdateResult(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	var req ResultEditRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	runner := c.Runners.For(userID, FeatureInspection, inspectionCaptions)
	snapshot := runner.Status()
	if snapshot.State == lifecycle.StateLoading {
		utils.Conflict(ctx, "analysis in flight")
		return
	}
	result, ok := snapshot.Result.(models.CropDiseaseResult)
	if !ok {
		utils.NotFound(ctx, "no completed analysis to edit")
		return
	}

	if req.Treatment != nil {
		result.Treatment = *req.Treatment
	}
	if req.PreventiveMeasures != nil {
		result.PreventiveMeasures = *req.PreventiveMeasures
	}
	if req.FertilizerDetails != nil {
		result.FertilizerDetails = *req.FertilizerDetails
	}
	if req.HerbicideDetails != nil {
		result.HerbicideDetails = *req.HerbicideDetails
	}
	if req.CompostDetails != nil {
		result.CompostDetails = *req.CompostDetails
	}

	runner.SetResult(result)
	utils.Success(ctx, result)
}
