package main

import (
	"log"
	"strings"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"farmops/config"
	"farmops/database"
	"farmops/pkg/ai"
	"farmops/pkg/middleware"
	"farmops/router"

	authCtrlImp "farmops/pkg/auth/controllerImp"
	healthCtrlImp "farmops/pkg/health/controllerImp"

	seasonCtrlImp "farmops/pkg/season/controllerImp"
	seasonRepoImp "farmops/pkg/season/repositoryImp"

	productCtrlImp "farmops/pkg/product/controllerImp"
	productRepoImp "farmops/pkg/product/repositoryImp"

	inventoryCtrlImp "farmops/pkg/inventory/controllerImp"
	inventoryRepoImp "farmops/pkg/inventory/repositoryImp"

	purchaseCtrlImp "farmops/pkg/purchase/controllerImp"
	purchaseRepoImp "farmops/pkg/purchase/repositoryImp"

	invoiceCtrlImp "farmops/pkg/invoice/controllerImp"
	invoiceRepoImp "farmops/pkg/invoice/repositoryImp"

	pricebookCtrlImp "farmops/pkg/pricebook/controllerImp"
	pricebookRepoImp "farmops/pkg/pricebook/repositoryImp"

	fieldCtrlImp "farmops/pkg/field/controllerImp"
	fieldRepoImp "farmops/pkg/field/repositoryImp"

	apprecordCtrlImp "farmops/pkg/apprecord/controllerImp"
	apprecordRepoImp "farmops/pkg/apprecord/repositoryImp"

	planningCtrlImp "farmops/pkg/planning/controllerImp"
	planningSvcImp "farmops/pkg/planning/serviceImp"

	exportCtrlImp "farmops/pkg/export/controllerImp"
	exportSvcImp "farmops/pkg/export/serviceImp"
)

func main() {
	cfg := config.Load()

	db := database.OpenSQLite(cfg.DBPath)

	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())
	e.Validator = middleware.NewValidator()

	// LLM gateway, mock when no key is configured
	var llm ai.Client
	if cfg.AIEndpoint != "" && cfg.AIAPIKey != "" {
		llm = ai.NewOpenAI(cfg.AIEndpoint, cfg.AIAPIKey, cfg.AIModel)
	} else {
		llm = ai.NewMock()
	}

	seasonRepo := seasonRepoImp.New(db)
	productRepo := productRepoImp.New(db)
	inventoryRepo := inventoryRepoImp.New(db)
	purchaseRepo := purchaseRepoImp.New(db)
	invoiceRepo := invoiceRepoImp.New(db)
	pricebookRepo := pricebookRepoImp.New(db)
	fieldRepo := fieldRepoImp.New(db)
	recordRepo := apprecordRepoImp.New(db)

	planner := planningSvcImp.New(seasonRepo, productRepo, inventoryRepo, purchaseRepo, invoiceRepo, pricebookRepo, recordRepo, fieldRepo)
	exporter := exportSvcImp.New(planner)

	seasonCtrl := seasonCtrlImp.New(seasonRepo)
	productCtrl := productCtrlImp.New(productRepo, llm, strings.Split(cfg.LabelDomains, ","), cfg.MaxLabelBytes)
	inventoryCtrl := inventoryCtrlImp.New(inventoryRepo)
	purchaseCtrl := purchaseCtrlImp.New(purchaseRepo)
	invoiceCtrl := invoiceCtrlImp.New(invoiceRepo)
	pricebookCtrl := pricebookCtrlImp.New(pricebookRepo)
	fieldCtrl := fieldCtrlImp.New(fieldRepo)
	recordCtrl := apprecordCtrlImp.New(recordRepo)
	planningCtrl := planningCtrlImp.New(planner)
	exportCtrl := exportCtrlImp.New(exporter)

	authCtrl := authCtrlImp.NewAuthController()
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	r := router.New(
		e,
		seasonCtrl,
		productCtrl,
		inventoryCtrl,
		purchaseCtrl,
		invoiceCtrl,
		pricebookCtrl,
		fieldCtrl,
		recordCtrl,
		planningCtrl,
		exportCtrl,
		authCtrl,
		healthCtrl,
	)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
