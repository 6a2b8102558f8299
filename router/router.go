package router

import (
	"github.com/labstack/echo/v4"

	"farmops/pkg/middleware"
)

type seasonCtrl interface {
	Create(echo.Context) error
	Get(echo.Context) error
	List(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

type productCtrl interface {
	Create(echo.Context) error
	Get(echo.Context) error
	List(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
	ExtractLabel(echo.Context) error
	SuggestRoles(echo.Context) error
}

type inventoryCtrl interface {
	Create(echo.Context) error
	List(echo.Context) error
	Adjust(echo.Context) error
	Delete(echo.Context) error
}

type purchaseCtrl interface {
	Create(echo.Context) error
	Get(echo.Context) error
	List(echo.Context) error
	UpdateStatus(echo.Context) error
	Receive(echo.Context) error
	Delete(echo.Context) error
}

type invoiceCtrl interface {
	Create(echo.Context) error
	Get(echo.Context) error
	List(echo.Context) error
	Delete(echo.Context) error
}

type priceBookCtrl interface {
	Create(echo.Context) error
	List(echo.Context) error
	Resolve(echo.Context) error
	Delete(echo.Context) error
}

type fieldCtrl interface {
	Create(echo.Context) error
	Get(echo.Context) error
	List(echo.Context) error
	Update(echo.Context) error
	Assign(echo.Context) error
	Assignments(echo.Context) error
}

type appRecordCtrl interface {
	Create(echo.Context) error
	List(echo.Context) error
	Delete(echo.Context) error
}

type planningCtrl interface {
	Usage(echo.Context) error
	Readiness(echo.Context) error
	ApplicationVariance(echo.Context) error
	PassVariance(echo.Context) error
	CheckRestrictions(echo.Context) error
}

type exportCtrl interface {
	VarianceXLSX(echo.Context) error
	ReadinessCSV(echo.Context) error
}

func New(
	e *echo.Echo,
	season seasonCtrl,
	product productCtrl,
	inventory inventoryCtrl,
	purchase purchaseCtrl,
	invoice invoiceCtrl,
	priceBook priceBookCtrl,
	field fieldCtrl,
	record appRecordCtrl,
	planning planningCtrl,
	export exportCtrl,
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.POST("/seasons", season.Create)
	api.GET("/seasons", season.List)
	api.GET("/seasons/:id", season.Get)
	api.PATCH("/seasons/:id", season.Update)
	api.DELETE("/seasons/:id", season.Delete)

	api.POST("/products", product.Create)
	api.GET("/products", product.List)
	api.GET("/products/:id", product.Get)
	api.PATCH("/products/:id", product.Update)
	api.DELETE("/products/:id", product.Delete)
	api.POST("/products/extract-label", product.ExtractLabel)
	api.POST("/products/suggest-roles", product.SuggestRoles)

	api.POST("/inventory", inventory.Create)
	api.GET("/inventory", inventory.List)
	api.PATCH("/inventory/:id/adjust", inventory.Adjust)
	api.DELETE("/inventory/:id", inventory.Delete)

	api.POST("/purchases", purchase.Create)
	api.GET("/purchases", purchase.List)
	api.GET("/purchases/:id", purchase.Get)
	api.PATCH("/purchases/:id/status", purchase.UpdateStatus)
	api.POST("/purchases/lines/:line_id/receive", purchase.Receive)
	api.DELETE("/purchases/:id", purchase.Delete)

	api.POST("/invoices", invoice.Create)
	api.GET("/invoices", invoice.List)
	api.GET("/invoices/:id", invoice.Get)
	api.DELETE("/invoices/:id", invoice.Delete)

	api.POST("/pricebook", priceBook.Create)
	api.GET("/pricebook", priceBook.List)
	api.GET("/pricebook/resolve", priceBook.Resolve)
	api.DELETE("/pricebook/:id", priceBook.Delete)

	api.POST("/fields", field.Create)
	api.GET("/fields", field.List)
	api.GET("/fields/:id", field.Get)
	api.PATCH("/fields/:id", field.Update)
	api.POST("/fields/:id/assignments", field.Assign)
	api.GET("/fields/:id/assignments", field.Assignments)

	api.POST("/applications", record.Create)
	api.GET("/applications", record.List)
	api.DELETE("/applications/:id", record.Delete)

	g := e.Group("/seasons")
	g.GET("/:id/usage", planning.Usage)
	g.GET("/:id/readiness", planning.Readiness)
	g.GET("/:id/variance/applications", planning.ApplicationVariance)
	g.GET("/:id/variance/passes", planning.PassVariance)
	g.POST("/:id/restrictions/check", planning.CheckRestrictions)
	g.GET("/:id/export/variance.xlsx", export.VarianceXLSX)
	g.GET("/:id/export/readiness.csv", export.ReadinessCSV)

	return e
}
