package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyWeatherAlertHeatwave(t *testing.T) {
	alert := ClassifyWeatherAlert(40, 800)
	require.NotNil(t, alert)
	assert.Equal(t, AlertDanger, alert.Type)
	assert.Contains(t, alert.Message, "उष्णतेची लाट")

	assert.Nil(t, ClassifyWeatherAlert(39.9, 800))
}

func TestClassifyWeatherAlertThunderstorm(t *testing.T) {
	for _, id := range []int{200, 212, 232} {
		alert := ClassifyWeatherAlert(30, id)
		require.NotNil(t, alert, "condition id %d", id)
		assert.Equal(t, AlertDanger, alert.Type)
		assert.Contains(t, alert.Message, "वादळाची")
	}
	assert.Nil(t, ClassifyWeatherAlert(30, 233))
}

func TestClassifyWeatherAlertHeavyRain(t *testing.T) {
	for _, id := range []int{502, 503, 504, 522} {
		alert := ClassifyWeatherAlert(30, id)
		require.NotNil(t, alert, "condition id %d", id)
		assert.Equal(t, AlertWarning, alert.Type)
		assert.Contains(t, alert.Message, "मुसळधार पाऊस")
	}
	// Light and moderate rain never alert.
	assert.Nil(t, ClassifyWeatherAlert(30, 500))
	assert.Nil(t, ClassifyWeatherAlert(30, 501))
}

func TestClassifyWeatherAlertHeatwaveWinsOverStorm(t *testing.T) {
	alert := ClassifyWeatherAlert(42, 210)
	require.NotNil(t, alert)
	assert.Contains(t, alert.Message, "उष्णतेची लाट")
}

func TestClassifyWeatherAlertCalm(t *testing.T) {
	assert.Nil(t, ClassifyWeatherAlert(28, 800))
}
