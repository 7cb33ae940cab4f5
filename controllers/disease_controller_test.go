package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-smartagro/models"
	"go-smartagro/utils"
)

func diseaseRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/diseases", NewDiseaseController().GetDiseases)
	return r
}

func decodeDiseases(t *testing.T, body []byte) []models.DiseaseInfo {
	t.Helper()
	var envelope utils.Response
	require.NoError(t, json.Unmarshal(body, &envelope))

	data, err := json.Marshal(envelope.Data)
	require.NoError(t, err)

	var diseases []models.DiseaseInfo
	require.NoError(t, json.Unmarshal(data, &diseases))
	return diseases
}

func TestGetDiseasesFullLibrary(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/diseases", nil)
	diseaseRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	diseases := decodeDiseases(t, w.Body.Bytes())
	assert.Equal(t, models.OfflineDiseases(), diseases)
}

func TestGetDiseasesCropFilter(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/diseases?crop="+`कापूस`, nil)
	diseaseRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	diseases := decodeDiseases(t, w.Body.Bytes())
	require.NotEmpty(t, diseases)
	for _, disease := range diseases {
		assert.Contains(t, disease.CropName, "कापूस")
	}
}

func TestGetDiseasesNoMatch(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/diseases?crop=zzz", nil)
	diseaseRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeDiseases(t, w.Body.Bytes()))
}
