package models

import "fmt"

// DiseaseInfo is one read-only entry of the offline disease library.
type DiseaseInfo struct {
	ID            string   `json:"id"`
	CropName      string   `json:"cropName"`
	AffectedCrops []string `json:"affectedCrops"`
	DiseaseName   string   `json:"diseaseName"`
	Reason        string   `json:"reason"`
	Solution      string   `json:"solution"`
	Pesticides    string   `json:"pesticides"`
	Herbicides    string   `json:"herbicides"`
	Compost       string   `json:"compost"`
	Precautions   string   `json:"precautions"`
	ImageURL      string   `json:"imageUrl"`
}

// OfflineDiseases returns the static reference catalog. The base
// entries are curated; the generated tail pads the library the same
// way the shipped dataset does.
func OfflineDiseases() []DiseaseInfo {
	diseases := []DiseaseInfo{
		{
			ID:            "d1",
			CropName:      "कापूस",
			AffectedCrops: []string{"कापूस", "भेंडी"},
			DiseaseName:   "लाल पडणे (Reddening)",
			Reason:        "मॅग्नेशियमची कमतरता आणि थंडी.",
			Solution:      "मॅग्नेशियम सल्फेटची फवारणी.",
			Pesticides:    "नाही.",
			Herbicides:    "नाही.",
			Compost:       "सेंद्रिय मॅग्नेशियमयुक्त खत.",
			Precautions:   "वेळेवर खत व्यवस्थापन करा.",
			ImageURL:      "https://images.unsplash.com/photo-1594900574131-9a744439c7fb?auto=format&fit=crop&q=80&w=400",
		},
		{
			ID:            "d2",
			CropName:      "कांदा",
			AffectedCrops: []string{"कांदा", "लसूण"},
			DiseaseName:   "जांभळा करपा (Purple Blotch)",
			Reason:        "बुरशीजन्य संसर्ग.",
			Solution:      "बुरशीनाशकाचा वापर.",
			Pesticides:    "मॅन्कोझेब किंवा कार्बेंडाझिम.",
			Herbicides:    "नाही.",
			Compost:       "निंबोळी पेंड.",
			Precautions:   "पाण्याचा निचरा व्यवस्थित ठेवा.",
			ImageURL:      "https://images.unsplash.com/photo-1618512496248-a07fe83aa8cb?auto=format&fit=crop&q=80&w=400",
		},
		{
			ID:            "d3",
			CropName:      "सोयाबीन",
			AffectedCrops: []string{"सोयाबीन", "मूग", "उडीद"},
			DiseaseName:   "पिवळा मोझॅक (Yellow Mosaic)",
			Reason:        "पांढरी माशी (White Fly).",
			Solution:      "मावा-तुडतुडे नियंत्रण.",
			Pesticides:    "इमिडाक्लोप्रिड.",
			Herbicides:    "नाही.",
			Compost:       "दशपर्णी अर्क.",
			Precautions:   "प्रादुर्भाव दिसताच झाडे उपटून टाका.",
			ImageURL:      "https://images.unsplash.com/photo-1592419044706-39796d40f98c?auto=format&fit=crop&q=80&w=400",
		},
		{
			ID:            "d4",
			CropName:      "मका",
			AffectedCrops: []string{"मका", "ज्वारी"},
			DiseaseName:   "लष्करी अळी (Fall Armyworm)",
			Reason:        "स्पोडोप्टेरा अळीचा हल्ला.",
			Solution:      "मक्याच्या पोंग्यात औषध टाकणे.",
			Pesticides:    "एमामेक्टिन बेंझोएट.",
			Herbicides:    "नाही.",
			Compost:       "शेणखत.",
			Precautions:   "सेंद्रिय कीटकनाशकांचा वापर करा.",
			ImageURL:      "https://images.unsplash.com/photo-1530507629858-e4977d30e9e0?auto=format&fit=crop&q=80&w=400",
		},
		{
			ID:            "d5",
			CropName:      "द्राक्षे",
			AffectedCrops: []string{"द्राक्षे"},
			DiseaseName:   "केवडा (Downy Mildew)",
			Reason:        "जास्त आर्द्रता आणि पाऊस.",
			Solution:      "कॉपरयुक्त बुरशीनाशक.",
			Pesticides:    "मेटॅलॅक्सिल.",
			Herbicides:    "नाही.",
			Compost:       "वर्मीकम्पोस्ट.",
			Precautions:   "वेळेवर छाटणी आणि हवा खेळती ठेवा.",
			ImageURL:      "https://images.unsplash.com/photo-1537084642907-629340c7e59c?auto=format&fit=crop&q=80&w=400",
		},
		{
			ID:            "d6",
			CropName:      "मिरची",
			AffectedCrops: []string{"मिरची", "टोमॅटो", "वांगी"},
			DiseaseName:   "चुरडा-मुरडा (Leaf Curl)",
			Reason:        "थ्रिप्स आणि कोळी कीटकांमुळे.",
			Solution:      "पिवळ्या चिकट सापळ्यांचा वापर.",
			Pesticides:    "फिप्रोनिल किंवा स्पिनोसॅड.",
			Herbicides:    "नाही.",
			Compost:       "गोमूत्र आणि हिंग फवारणी.",
			Precautions:   "रोपांची अवस्था असतानाच काळजी घ्या.",
			ImageURL:      "https://images.unsplash.com/photo-1597362860722-39402c617022?auto=format&fit=crop&q=80&w=400",
		},
		{
			ID:            "d7",
			CropName:      "गहू",
			AffectedCrops: []string{"गहू", "बाजरी"},
			DiseaseName:   "तांबेरा (Rust)",
			Reason:        "हवेतील ओलावा आणि थंड हवामान.",
			Solution:      "सल्फरयुक्त बुरशीनाशकाची फवारणी.",
			Pesticides:    "प्रोपीकोनॅझोल.",
			Herbicides:    "२,४-डी (तणनाशक).",
			Compost:       "सेंद्रिय खत.",
			Precautions:   "रोगप्रतिकारक जातींचा वापर करा.",
			ImageURL:      "https://images.unsplash.com/photo-1501431821163-9dcd9e922974?auto=format&fit=crop&q=80&w=400",
		},
		{
			ID:            "d8",
			CropName:      "डाळिंब",
			AffectedCrops: []string{"डाळिंब"},
			DiseaseName:   "तेल्या (Bacterial Blight)",
			Reason:        "बॅक्टेरिया (Xanthomonas).",
			Solution:      "प्रतिजैविके आणि बोर्डो मिश्रण.",
			Pesticides:    "स्ट्रेप्टोसायक्लीन.",
			Herbicides:    "नाही.",
			Compost:       "ट्रायकोडर्मा विरिडी.",
			Precautions:   "पाऊस पडण्यापूर्वी बोर्डो मिश्रण फवारा.",
			ImageURL:      "https://images.unsplash.com/photo-1615485290382-441e4d0c9cb5?auto=format&fit=crop&q=80&w=400",
		},
	}

	for i := 0; i < 15; i++ {
		cropName := "फळबाग"
		if i%2 == 0 {
			cropName = "भाजीपाला"
		}
		diseases = append(diseases, DiseaseInfo{
			ID:            fmt.Sprintf("ext-%d", i),
			CropName:      cropName,
			AffectedCrops: []string{"विविध पिके"},
			DiseaseName:   fmt.Sprintf("बुरशीजन्य करपा प्रकार %d", i+1),
			Reason:        "बुरशी आणि खराब निचरा.",
			Solution:      "कार्बेंडाझिम फवारणी.",
			Pesticides:    "बुरशीनाशक.",
			Herbicides:    "नाही.",
			Compost:       "सेंद्रिय खत.",
			Precautions:   "वेळेवर पाणी नियोजन.",
			ImageURL:      fmt.Sprintf("https://images.unsplash.com/photo-1523348837708-15d4a09cfac2?auto=format&fit=crop&q=80&w=400&sig=%d", i),
		})
	}

	return diseases
}
