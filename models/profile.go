package models

import "encoding/json"

// MaharashtraDistricts is the fixed district list used by profile,
// weather and market screens.
var MaharashtraDistricts = []string{
	"पुणे", "मुंबई शहर", "मुंबई उपनगर", "ठाणे", "पालघर", "रायगड",
	"रत्नागिरी", "सिंधुदुर्ग", "नाशिक", "धुळे", "नंदुरबार", "जळगाव",
	"अहमदनगर", "सातारा", "सांगली", "सोलापूर", "कोल्हापूर",
	"छत्रपती संभाजीनगर", "जालना", "बीड", "लातूर", "धाराशिव", "नांदेड",
	"परभणी", "हिंगोली", "बुलढाणा", "अकोला", "वाशिम", "अमरावती",
	"यवतमाळ", "वर्धा", "नागपूर", "भंडारा", "गोंदिया", "चंद्रपूर",
	"गडचिरोली",
}

// SoilTypes are the selectable soil types for advice forms.
var SoilTypes = []string{"काळी माती", "तांबडी माती", "पोयटा माती", "वालुकामय माती", "चिकणमाती"}

// Seasons are the selectable cropping seasons.
var Seasons = []string{"खरीप", "रब्बी", "उन्हाळी"}

// FarmerProfile is the single per-user identity/preference record.
type FarmerProfile struct {
	Name         string   `json:"name"`
	Age          string   `json:"age"`
	Village      string   `json:"village"`
	District     string   `json:"district"`
	LandArea     string   `json:"landArea"`
	PrimaryCrops []string `json:"primaryCrops"`
	ProfilePic   string   `json:"profilePic,omitempty"`
	FarmLat      *float64 `json:"farmLat,omitempty"`
	FarmLng      *float64 `json:"farmLng,omitempty"`
}

// DefaultProfile returns the empty profile shown before first save.
func DefaultProfile() FarmerProfile {
	return FarmerProfile{
		District:     MaharashtraDistricts[0],
		PrimaryCrops: []string{},
	}
}

// DecodeProfile parses a stored profile document, falling back to the
// default for absent or malformed data. Corruption is never surfaced.
func DecodeProfile(document string) FarmerProfile {
	profile := DefaultProfile()
	if document == "" {
		return profile
	}
	if err := json.Unmarshal([]byte(document), &profile); err != nil {
		return DefaultProfile()
	}
	if profile.District == "" {
		profile.District = MaharashtraDistricts[0]
	}
	if profile.PrimaryCrops == nil {
		profile.PrimaryCrops = []string{}
	}
	return profile
}

// HasFarmLocation reports whether farm coordinates were saved.
func (p FarmerProfile) HasFarmLocation() bool {
	return p.FarmLat != nil && p.FarmLng != nil
}
