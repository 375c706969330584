package models

// ChatResponse 自由对话响应
type ChatResponse struct {
	Reply string `json:"reply"`
}

// CheckInResponse 签到响应，savedLog 仅在情绪记录成功保存时返回
type CheckInResponse struct {
	Reply    string          `json:"reply"`
	Analysis *AnalysisResult `json:"analysis,omitempty"`
	SavedLog *MoodLog        `json:"savedLog,omitempty"`
}

// HierarchyResponse 暴露阶梯响应
type HierarchyResponse struct {
	Hierarchy []ExposureStep `json:"hierarchy"`
}

// UsageResponse 当日AI调用次数
type UsageResponse struct {
	Date  string           `json:"date"`
	Usage map[string]int64 `json:"usage"`
}
