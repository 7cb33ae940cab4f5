package models

// ChatMessage is one turn of the assistant conversation. The sequence
// is append-only and held in memory for the session only.
type ChatMessage struct {
	ID   string `json:"id"`
	Role string `json:"role"` // "user" or "bot"
	Text string `json:"text"`
}

// Dosage is a named remedy with its application quantity.
type Dosage struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
}

// CropDiseaseResult is the outcome of one AI crop inspection. The
// treatment and preventive fields stay editable after the fact; edits
// are local only and never re-submitted to the AI.
type CropDiseaseResult struct {
	CropName           string `json:"cropName"`
	DiseaseName        string `json:"diseaseName"`
	Accuracy           int    `json:"accuracy"`
	Explanation        string `json:"explanation"`
	Treatment          string `json:"treatment"`
	CropStage          string `json:"cropStage"`
	FertilizerDetails  Dosage `json:"fertilizerDetails"`
	HerbicideDetails   Dosage `json:"herbicideDetails"`
	CompostDetails     Dosage `json:"compostDetails"`
	PreventiveMeasures string `json:"preventiveMeasures"`
	IsSafe             bool   `json:"isSafe"`
}

// SowingAdvice is the sowing planner response.
type SowingAdvice struct {
	TractorTiming   string `json:"tractorTiming"`
	WaterPercentage string `json:"waterPercentage"`
	DepthAndSpacing string `json:"depthAndSpacing"`
	ProTip          string `json:"proTip"`
}

// FertilizerSchedule is one stage of a fertilizer plan.
type FertilizerSchedule struct {
	Stage       string   `json:"stage"`
	Timing      string   `json:"timing"`
	Fertilizers []string `json:"fertilizers"`
	Quantity    string   `json:"quantity"`
	Method      string   `json:"method"`
}

// FertilizerAdvice is the fertilizer manager response.
type FertilizerAdvice struct {
	CropName      string               `json:"cropName"`
	SoilSummary   string               `json:"soilSummary"`
	Schedules     []FertilizerSchedule `json:"schedules"`
	OrganicTips   string               `json:"organicTips"`
	WarningNotice string               `json:"warningNotice"`
}

// CropRecommendation is one crop suggestion from the smart calculator.
type CropRecommendation struct {
	CropName           string `json:"cropName"`
	ExpectedYield      string `json:"expectedYield"`
	EstimatedProfit    string `json:"estimatedProfit"`
	FertilizerPlan     string `json:"fertilizerPlan"`
	IrrigationStrategy string `json:"irrigationStrategy"`
	SoilAdvice         string `json:"soilAdvice"`
}

// FutureAdvice is the long-term planning response.
type FutureAdvice struct {
	InvestmentAdvice     string `json:"investmentAdvice"`
	MarketPrediction     string `json:"marketPrediction"`
	CropTransitionAdvice string `json:"cropTransitionAdvice"`
	RiskMitigation       string `json:"riskMitigation"`
}

// SmartAgroAdvice bundles crop recommendations with future advice.
type SmartAgroAdvice struct {
	Recommendations []CropRecommendation `json:"recommendations"`
	FutureAdvice    FutureAdvice         `json:"futureAdvice"`
}

// NewsItem is one agricultural news entry.
type NewsItem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Source  string `json:"source"`
}
