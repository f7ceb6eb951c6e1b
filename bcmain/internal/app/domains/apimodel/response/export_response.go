package response

// SlideInfo 模板中单页幻灯片的描述（DTO）
type SlideInfo struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// TemplateResponse 幻灯片模板结构响应（DTO）
type TemplateResponse struct {
	Slides []SlideInfo `json:"slides"`
}
