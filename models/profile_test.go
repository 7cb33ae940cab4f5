package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeProfileDefaults(t *testing.T) {
	profile := DecodeProfile("")
	assert.Equal(t, "पुणे", profile.District)
	assert.NotNil(t, profile.PrimaryCrops)
	assert.Empty(t, profile.PrimaryCrops)
	assert.False(t, profile.HasFarmLocation())
}

func TestDecodeProfileCorruptDocument(t *testing.T) {
	assert.Equal(t, DefaultProfile(), DecodeProfile("{broken"))
	assert.Equal(t, DefaultProfile(), DecodeProfile(`"just a string"`))
}

func TestDecodeProfileRoundTrip(t *testing.T) {
	lat, lng := 18.52, 73.85
	saved := FarmerProfile{
		Name:         "रमेश पाटील",
		Age:          "45",
		Village:      "शिरूर",
		District:     "नाशिक",
		LandArea:     "5",
		PrimaryCrops: []string{"कांदा", "सोयाबीन"},
		FarmLat:      &lat,
		FarmLng:      &lng,
	}
	document, err := json.Marshal(saved)
	require.NoError(t, err)

	decoded := DecodeProfile(string(document))
	assert.Equal(t, saved, decoded)
	assert.True(t, decoded.HasFarmLocation())
}

func TestDecodeProfileFillsMissingFields(t *testing.T) {
	decoded := DecodeProfile(`{"name":"गणेश"}`)
	assert.Equal(t, "गणेश", decoded.Name)
	assert.Equal(t, "पुणे", decoded.District)
	assert.NotNil(t, decoded.PrimaryCrops)
}

func TestDistrictListCoversState(t *testing.T) {
	assert.Len(t, MaharashtraDistricts, 36)
	assert.Equal(t, "पुणे", MaharashtraDistricts[0])
}
