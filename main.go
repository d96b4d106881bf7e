package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
	"hr-records-backend/config"
	apiv1 "hr-records-backend/controllers/v1"
	"hr-records-backend/controllers/v1/dict"
	_ "hr-records-backend/docs"
	"hr-records-backend/fiberlog"
	"hr-records-backend/initializers"
	"hr-records-backend/lib/ws"
	"hr-records-backend/middleware"
)

// @title HR Records API
// @version 1.0
// @description Кадровые записи: сотрудники, награды, повышения, увольнения, переводы, взыскания, командировки, график
// @BasePath /
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: config.Conf.App.BodyLimit,
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	// файлы хранилища
	apiv1.InitStorageRouters(app, config.Conf.S3.StorageURL)

	//api
	apiV1 := fiber.New(fiber.Config{
		BodyLimit: config.Conf.App.BodyLimit,
	})
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	if config.Conf.App.ErrNotifyURL != "" {
		apiV1.Use(middleware.ErrNotify(config.Conf.App.ErrNotifyURL))
	}
	apiV1.Use(middleware.WithBodyLimit(int64(config.Conf.App.BodyLimit)))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, DELETE, PUT",
	}))
	apiv1.InitAuthApiRouters(apiV1)

	// уведомления
	wsRouter := apiV1.Group("/ws", middleware.AuthorizationRequired())
	ws.InitWs(wsRouter)

	// остальные разделы только для авторизованных пользователей
	secured := apiV1.Group("", middleware.AuthorizationRequired(), middleware.RbacMiddleware())
	dict.InitDepartmentDictApiRouters(secured)
	dict.InitLineDictApiRouters(secured)
	apiv1.InitEmployeeApiRouters(secured)
	apiv1.InitAwardApiRouters(secured)
	apiv1.InitPromotionApiRouters(secured)
	apiv1.InitResignationApiRouters(secured)
	apiv1.InitTerminationApiRouters(secured)
	apiv1.InitTransferApiRouters(secured)
	apiv1.InitWarningApiRouters(secured)
	apiv1.InitTravelOrderApiRouters(secured)
	apiv1.InitScheduleApiRouters(secured)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-c
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
