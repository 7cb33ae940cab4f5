package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"go-smartagro/config"
	"go-smartagro/models"
)

// Localized AI error messages shown inline by advice features.
const (
	MsgQuotaExceeded    = "क्षमस्व, एआय कोटा संपला आहे. कृपया थोड्या वेळाने प्रयत्न करा."
	MsgTechnicalFailure = "तांत्रिक अडचण आली आहे. कृपया पुन्हा प्रयत्न करा."
)

// ErrQuotaExceeded marks a rate-limit/quota signal from the AI service.
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// GeminiService wraps every call to the generative AI collaborator:
// JSON-structured advice, free-text chat, visual inspection and TTS
// audio. One external call per feature submission; no retries.
type GeminiService struct {
	client    *genai.Client
	model     string
	ttsModel  string
	voiceName string
	logger    *zap.Logger
}

// NewGeminiService builds the client from configuration.
func NewGeminiService(ctx context.Context, cfg config.GeminiConfig, logger *zap.Logger) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiService{
		client:    client,
		model:     cfg.Model,
		ttsModel:  cfg.TTSModel,
		voiceName: cfg.VoiceName,
		logger:    logger,
	}, nil
}

// wrapAIError tags quota/rate-limit signals so callers can map them to
// the dedicated localized message.
func wrapAIError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "429") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED") ||
		strings.Contains(strings.ToLower(msg), "quota") {
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	}
	return err
}

// LocalizedAIError maps a service error to its farmer-facing Marathi
// message, reporting whether it was a quota failure.
func LocalizedAIError(err error) (string, bool) {
	if errors.Is(err, ErrQuotaExceeded) {
		return MsgQuotaExceeded, true
	}
	return MsgTechnicalFailure, false
}

// generateJSON runs one prompt expecting a JSON document back.
func (s *GeminiService) generateJSON(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) ([]byte, error) {
	if cfg == nil {
		cfg = &genai.GenerateContentConfig{}
	}
	cfg.ResponseMIMEType = "application/json"
	if cfg.ThinkingConfig == nil {
		cfg.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(int32(0))}
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, wrapAIError(err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		text = "{}"
	}
	return []byte(text), nil
}

// SowingRequest is the sowing planner form.
type SowingRequest struct {
	LandArea     string `json:"landArea"`
	SoilType     string `json:"soilType"`
	Season       string `json:"season"`
	SoilMoisture string `json:"soilMoisture"`
	LastRainfall string `json:"lastRainfall"`
}

// SowingAdvice asks for tractor timing, water percentage and sowing
// depth/spacing for the given field conditions.
func (s *GeminiService) SowingAdvice(ctx context.Context, req SowingRequest) (models.SowingAdvice, error) {
	prompt := fmt.Sprintf(`शेती पेरणी सल्ला (Sowing Advice):
माहिती: क्षेत्रफळ %s एकर, माती %s, हंगाम %s, ओलावा %s, पाऊस %s.
कृपया खालील बाबींवर अत्यंत थोडक्यात मराठीत सल्ला द्या:
१. ट्रॅक्टर चालवण्याची योग्य वेळ (अचूक दिवस/वेळ).
२. पाण्याची टक्केवारी (किती पाणी द्यावे %%).
३. पेरणीची खोली आणि अंतर.

उत्तर JSON फॉरमॅटमध्ये द्या:
{
  "tractorTiming": "ट्रॅक्टर चालवण्याची वेळ",
  "waterPercentage": "पाण्याची टक्केवारी",
  "depthAndSpacing": "खोली आणि अंतर",
  "proTip": "महत्त्वाची टीप"
}`, req.LandArea, req.SoilType, req.Season, req.SoilMoisture, req.LastRainfall)

	var advice models.SowingAdvice
	data, err := s.generateJSON(ctx, prompt, nil)
	if err != nil {
		return advice, err
	}
	if err := json.Unmarshal(data, &advice); err != nil {
		return advice, fmt.Errorf("malformed sowing advice response: %w", err)
	}
	return advice, nil
}

// FertilizerRequest is the fertilizer manager form.
type FertilizerRequest struct {
	TargetCrop string `json:"targetCrop" binding:"required"`
	LandArea   string `json:"landArea"`
	SoilType   string `json:"soilType"`
	NLevel     string `json:"nLevel"`
	PLevel     string `json:"pLevel"`
	KLevel     string `json:"kLevel"`
	PrevCrop   string `json:"prevCrop"`
}

// FertilizerAdvice asks for a staged fertilizer schedule.
func (s *GeminiService) FertilizerAdvice(ctx context.Context, req FertilizerRequest) (models.FertilizerAdvice, error) {
	prompt := fmt.Sprintf(`खत व्यवस्थापन सल्ला (Fertilizer Management):
पीक: %s, क्षेत्र: %s एकर, माती: %s.
माती परीक्षण माहिती (असल्यास): नत्र(N): %s, स्फुरद(P): %s, पालाश(K): %s.
मागील पीक: %s.

कृपया खालील माहिती मराठीत JSON फॉरमॅटमध्ये द्या:
{
  "cropName": "पिकाचे नाव",
  "soilSummary": "मातीची स्थिती आणि आवश्यकतेचा थोडक्यात आढावा",
  "schedules": [
    {
      "stage": "टप्पा (उदा. पायाभूत डोस / फुटव्याच्या वेळी)",
      "timing": "वेळ (उदा. पेरणीच्या वेळी)",
      "fertilizers": ["खतांची नावे उदा. Urea, DAP"],
      "quantity": "प्रमाण (उदा. २ गोण्या प्रति एकर)",
      "method": "देण्याची पद्धत"
    }
  ],
  "organicTips": "सेंद्रिय खते आणि जिवाणू खतांचा वापर",
  "warningNotice": "महत्त्वाची सूचना किंवा इशारा"
}`, req.TargetCrop, req.LandArea, req.SoilType, req.NLevel, req.PLevel, req.KLevel, req.PrevCrop)

	var advice models.FertilizerAdvice
	data, err := s.generateJSON(ctx, prompt, nil)
	if err != nil {
		return advice, err
	}
	if err := json.Unmarshal(data, &advice); err != nil {
		return advice, fmt.Errorf("malformed fertilizer advice response: %w", err)
	}
	return advice, nil
}

// CalcRequest is the smart crop calculator form.
type CalcRequest struct {
	LandArea string `json:"landArea" binding:"required"`
	SoilType string `json:"soilType"`
	PH       string `json:"pH"`
	Season   string `json:"season"`
}

// SmartAgroAdvice asks for detailed crop recommendations plus
// long-term guidance.
func (s *GeminiService) SmartAgroAdvice(ctx context.Context, req CalcRequest) (models.SmartAgroAdvice, error) {
	prompt := fmt.Sprintf(`तुम्ही एक तज्ज्ञ कृषी सल्लागार आहात. महाराष्ट्र राज्यातील एका शेतकऱ्यासाठी खालील माहितीच्या आधारे सविस्तर शिफारसी करा:
क्षेत्रफळ: %s एकर, मातीचा प्रकार: %s, pH पातळी: %s, हंगाम: %s.

कृपया खालील नेमक्या JSON फॉरमॅटमध्ये उत्तर द्या:
{
  "recommendations": [
    {
      "cropName": "पिकाचे नाव",
      "expectedYield": "अपेक्षित उत्पन्न (उदा. १०-१२ क्विंटल)",
      "estimatedProfit": "अंदाजित नफा (रु. प्रति एकर)",
      "fertilizerPlan": "खत व्यवस्थापनाचा थोडक्यात सल्ला",
      "irrigationStrategy": "पाणी देण्याचे नियोजन",
      "soilAdvice": "माती सुधारण्यासाठी सल्ला"
    }
  ],
  "futureAdvice": {
    "investmentAdvice": "गुंतवणूक सल्ला",
    "marketPrediction": "बाजारभाव अंदाज",
    "cropTransitionAdvice": "पीक बदल सल्ला",
    "riskMitigation": "धोका निवारण उपाय"
  }
}`, req.LandArea, req.SoilType, req.PH, req.Season)

	var advice models.SmartAgroAdvice
	data, err := s.generateJSON(ctx, prompt, &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.7)),
	})
	if err != nil {
		return advice, err
	}
	if err := json.Unmarshal(data, &advice); err != nil {
		return advice, fmt.Errorf("malformed crop recommendation response: %w", err)
	}
	return advice, nil
}

// FuturePlannerAdvice asks for long-term planning based on the whole
// saved profile.
func (s *GeminiService) FuturePlannerAdvice(ctx context.Context, profile models.FarmerProfile) (models.FutureAdvice, error) {
	profileJSON, _ := json.Marshal(profile)
	prompt := fmt.Sprintf(`दीर्घकालीन कृषी नियोजन JSON: { "marketPrediction": "...", "investmentAdvice": "...", "cropTransitionAdvice": "...", "riskMitigation": "..." }
प्रोफाइल: %s. मराठीत उत्तर द्या.`, profileJSON)

	var advice models.FutureAdvice
	data, err := s.generateJSON(ctx, prompt, nil)
	if err != nil {
		return advice, err
	}
	if err := json.Unmarshal(data, &advice); err != nil {
		return advice, fmt.Errorf("malformed planner response: %w", err)
	}
	return advice, nil
}

// AgroNews asks for recent agricultural news for a district. Failures
// degrade to an empty list; the news screen never surfaces AI errors.
func (s *GeminiService) AgroNews(ctx context.Context, district string) ([]models.NewsItem, error) {
	if district == "" {
		district = "महाराष्ट्र"
	}
	prompt := fmt.Sprintf(`महाराष्ट्र आणि %s जिल्ह्यासाठी ताज्या कृषी बातम्या आणि सरकारी योजनांची यादी JSON फॉरमॅटमध्ये द्या:
{
  "news": [
    { "id": "1", "title": "बातम्यांचे शीर्षक", "content": "बातम्यांचा सारांश", "date": "तारीख", "source": "स्त्रोत" }
  ]
}
फक्त मराठीत लिहा.`, district)

	data, err := s.generateJSON(ctx, prompt, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		News []models.NewsItem `json:"news"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("malformed news response: %w", err)
	}
	return payload.News, nil
}

// Chat answers one assistant turn, personalized with the profile name.
// Errors come back as the localized message in the bot's voice.
func (s *GeminiService) Chat(ctx context.Context, message string, profile models.FarmerProfile) (string, error) {
	name := profile.Name
	if name == "" {
		name = "शेतकरी"
	}
	systemInstruction := fmt.Sprintf(`तुम्ही 'स्मार्ट अ‍ॅग्रो' एआय सहाय्यक आहात.
नाव: %s. नियम: १. फक्त मराठीत बोला. २. अत्यंत थोडक्यात उत्तर द्या. ३. थेट मुद्द्यावर बोला. ४. जर प्रश्न शेतीबाहेरचा असेल तर नम्रपणे नकार द्या.`, name)

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(message), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(float32(0.5)),
		ThinkingConfig:    &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(int32(0))},
	})
	if err != nil {
		return "", wrapAIError(err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "क्षमस्व, मी आता उत्तर देऊ शकत नाही.", nil
	}
	return text, nil
}

// MarketSummary produces the "market pulse" report over the top
// quotes. Callers substitute a canned line on failure.
func (s *GeminiService) MarketSummary(ctx context.Context, prices []models.MarketPrice) (string, error) {
	top := prices
	if len(top) > 5 {
		top = top[:5]
	}
	pricesJSON, _ := json.Marshal(top)
	prompt := fmt.Sprintf(`खालील बाजारभावांच्या आधारे (Top 5 items) महाराष्ट्रातील शेतकऱ्यांसाठी 'मार्केट पल्स' रिपोर्ट तयार करा.
१. बाजारात 'तेजी' आहे की 'मंदी'?
२. कोणत्या पिकाला सध्या चांगला भाव मिळत आहे?
३. माल विक्रीसाठी काढण्याची ही योग्य वेळ आहे का? (Sell/Hold Advice)

फक्त ३-४ ओळीत अत्यंत प्रभावी मराठीत उत्तर द्या: %s`, pricesJSON)

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(int32(0))},
	})
	if err != nil {
		return "", wrapAIError(err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

// InspectCrop sends the uploaded image or video inline for visual
// diagnosis. The response schema carries crop stage and exact dosages.
func (s *GeminiService) InspectCrop(ctx context.Context, media []byte, mimeType string) (models.CropDiseaseResult, error) {
	mediaKind := "image"
	if strings.HasPrefix(mimeType, "video") {
		mediaKind = "video frames"
	}
	systemInstruction := fmt.Sprintf(`You are a World-Class Fast Crop Diagnostic Expert. Analyze the provided %s carefully.

Output strictly in JSON format in the Marathi language.

IMPORTANT: For treatment, fertilizers, and herbicides, you MUST provide SPECIFIC DOSAGE (प्रमाण) based on the CROP AGE or SIZE (पिकाची अवस्था) detected in the media.

JSON Schema: {
  "cropName": "पिकाचे नाव",
  "diseaseName": "रोगाचे नाव किंवा 'निरोगी'",
  "accuracy": 0-100,
  "explanation": "रोगाची कारणे आणि लक्षणे",
  "treatment": "तात्काळ मुख्य उपचार",
  "cropStage": "पिकाची अवस्था/वय (उदा. ३० दिवसांचे रोप, किंवा मोठे फळझाड)",
  "fertilizerDetails": { "name": "खताचे नाव", "dosage": "अचूक प्रमाण" },
  "herbicideDetails": { "name": "कीटकनाशक/औषध नाव", "dosage": "अचूक प्रमाण" },
  "compostDetails": { "name": "सेंद्रिय खत/कंपोस्ट नाव", "dosage": "अचूक प्रमाण" },
  "preventiveMeasures": "भविष्यातील खबरदारी",
  "isSafe": boolean
}`, mediaKind)

	parts := []*genai.Part{
		genai.NewPartFromBytes(media, mimeType),
		genai.NewPartFromText("या पिकाचे विश्लेषण करा आणि पिकाचे वय/आकार ओळखून खत, औषध आणि कंपोस्टचे अचूक प्रमाण सांगा."),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType:  "application/json",
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		ThinkingConfig:    &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(int32(0))},
	})
	if err != nil {
		return models.CropDiseaseResult{}, wrapAIError(err)
	}

	var result models.CropDiseaseResult
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		text = "{}"
	}
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return result, fmt.Errorf("malformed inspection response: %w", err)
	}
	return result, nil
}

// SynthesizeSpeech requests audio output for the text and returns the
// raw little-endian 16-bit PCM payload. Implements speech.TTSClient.
func (s *GeminiService) SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.ttsModel, genai.Text(text), &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: s.voiceName},
			},
		},
	})
	if err != nil {
		return nil, wrapAIError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no audio returned")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}
	return nil, fmt.Errorf("no audio returned")
}
