package svexport

import (
	"context"
	"fmt"
	"strings"

	"bcp/bcmain/internal/app/domains/apimodel/response"
	"bcp/bcmain/internal/app/domains/modules/mdcase"
	"bcp/bcmain/internal/app/pkg/errorx"
	"bcp/common/model"
)

// RenderedDeck 渲染完成的幻灯片附件
type RenderedDeck struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService 幻灯片导出服务
type ExportService struct {
	caseModule *mdcase.CaseModule
	renderer   DeckRenderer
}

// NewExportService 创建导出服务实例
func NewExportService(caseModule *mdcase.CaseModule, renderer DeckRenderer) *ExportService {
	return &ExportService{
		caseModule: caseModule,
		renderer:   renderer,
	}
}

// ExportDeck 从内联案例数据组装并渲染幻灯片
func (s *ExportService) ExportDeck(data *model.BusinessCaseData) (*RenderedDeck, error) {
	deck := BuildDeck(data)

	content, err := s.renderer.Render(deck)
	if err != nil {
		return nil, fmt.Errorf("render deck failed: %w", err)
	}

	filename := strings.ReplaceAll(data.ProjectName, " ", "_") + "_business_case" + s.renderer.FileExtension()
	return &RenderedDeck{
		Filename:    filename,
		ContentType: s.renderer.ContentType(),
		Content:     content,
	}, nil
}

// ExportStoredDeck 加载已存储的案例并渲染幻灯片
func (s *ExportService) ExportStoredDeck(ctx context.Context, projectName string) (*RenderedDeck, error) {
	businessCase, err := s.caseModule.GetCaseByProjectName(ctx, projectName)
	if err != nil {
		return nil, fmt.Errorf("get business case failed: %w", err)
	}
	if businessCase == nil {
		return nil, errorx.ErrCaseNotFound
	}
	return s.ExportDeck(businessCase.Data())
}

// Template 返回固定的 12 页模板结构
func (s *ExportService) Template() *response.TemplateResponse {
	return &response.TemplateResponse{
		Slides: []response.SlideInfo{
			{ID: 1, Title: "Title Slide", Type: SlideTypeTitle},
			{ID: 2, Title: "Executive Summary", Type: SlideTypeContent},
			{ID: 3, Title: "Revenue Projection", Type: SlideTypeChart},
			{ID: 4, Title: "Cost Analysis", Type: SlideTypeChart},
			{ID: 5, Title: "Profitability Analysis", Type: SlideTypeChart},
			{ID: 6, Title: "Net Income Projection", Type: SlideTypeChart},
			{ID: 7, Title: "Key Assumptions", Type: SlideTypeContent},
			{ID: 8, Title: "Risk Analysis", Type: SlideTypeContent},
			{ID: 9, Title: "Implementation Timeline", Type: SlideTypeContent},
			{ID: 10, Title: "Resource Requirements", Type: SlideTypeContent},
			{ID: 11, Title: "Financial Summary", Type: SlideTypeContent},
			{ID: 12, Title: "Conclusion & Recommendations", Type: SlideTypeContent},
		},
	}
}
