package routers

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"bcp/bcmain/internal/app/server/handlers/audit"
	"bcp/bcmain/internal/app/server/handlers/canvas"
	"bcp/bcmain/internal/app/server/handlers/cases"
	"bcp/bcmain/internal/app/server/handlers/export"
	"bcp/bcmain/internal/app/server/middlewares"
)

// 校验错误用 json 字段名回显，与 API 字段保持一致
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// SetupRoutes 配置所有路由，使用 Route Group 分类
func SetupRoutes(
	caseHandler *cases.CaseHandler,
	auditHandler *audit.AuditHandler,
	exportHandler *export.ExportHandler,
	canvasHandler *canvas.CanvasHandler,
) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORS())
	r.Use(middlewares.Logger())
	r.Use(middlewares.ErrorHandler())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "bcmain",
		})
	})

	v1 := r.Group("/api/v1")
	{
		caseRoutes := v1.Group("/cases")
		{
			caseRoutes.POST("", caseHandler.Create)
			caseRoutes.GET("", caseHandler.List)
			caseRoutes.GET("/:project_name", caseHandler.Get)
			caseRoutes.PUT("/:project_name/financials", caseHandler.UpdateFinancials)
			caseRoutes.DELETE("/:project_name", caseHandler.Delete)
		}

		auditRoutes := v1.Group("/audit")
		{
			auditRoutes.POST("", auditHandler.Audit)
			auditRoutes.POST("/formula", auditHandler.ValidateFormula)
			auditRoutes.GET("/rules", auditHandler.Rules)
		}

		exportRoutes := v1.Group("/export")
		{
			exportRoutes.POST("/deck", exportHandler.Deck)
			exportRoutes.GET("/template", exportHandler.Template)
		}

		canvasRoutes := v1.Group("/canvas")
		{
			canvasRoutes.POST("/generate", canvasHandler.Generate)
			canvasRoutes.POST("/generate-all", canvasHandler.GenerateAll)
			canvasRoutes.POST("/enhance", canvasHandler.Enhance)
			canvasRoutes.POST("/suggest", canvasHandler.Suggest)
			canvasRoutes.POST("/feedback", canvasHandler.Feedback)
			canvasRoutes.GET("/building-blocks", canvasHandler.Blocks)
			canvasRoutes.GET("/status", canvasHandler.ServiceStatus)
			canvasRoutes.POST("/knowledge-base/search", canvasHandler.SearchKnowledgeBase)
			canvasRoutes.GET("/knowledge-base/status", canvasHandler.KnowledgeBaseStatus)
		}
	}

	return r
}
