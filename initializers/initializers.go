package initializers

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"hr-records-backend/config"
	"hr-records-backend/fiberlog"
	authhandler "hr-records-backend/lib/auth"
	awardshandler "hr-records-backend/lib/awards"
	departmentprovider "hr-records-backend/lib/dicts/department"
	lineprovider "hr-records-backend/lib/dicts/line"
	employeeshandler "hr-records-backend/lib/employees"
	"hr-records-backend/lib/events"
	pdfexport "hr-records-backend/lib/export/pdf"
	xlsexport "hr-records-backend/lib/export/xls"
	notificationhandler "hr-records-backend/lib/notification"
	promotionshandler "hr-records-backend/lib/promotions"
	"hr-records-backend/lib/rbac"
	resignationshandler "hr-records-backend/lib/resignations"
	scheduleshandler "hr-records-backend/lib/schedules"
	terminationshandler "hr-records-backend/lib/terminations"
	transfershandler "hr-records-backend/lib/transfers"
	travelordershandler "hr-records-backend/lib/travel-orders"
	travelorderworker "hr-records-backend/lib/travel-orders/worker"
	warningshandler "hr-records-backend/lib/warnings"
	connectionhub "hr-records-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	config.InitConfig()
	LoggerConfig = InitLogger(config.Conf.App.LogLevel)
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	events.NewHandler(ctx, config.Conf.Kafka.Brokers, config.Conf.Kafka.Topic)
	connectionhub.Init()
	notificationhandler.NewHandler()
	rbac.NewHandler()
	xlsexport.NewHandler()
	pdfexport.NewHandler(config.Conf.App.FontDir)
	departmentprovider.NewHandler()
	lineprovider.NewHandler(*config.Conf.Features.LinesEnabled)
	authhandler.NewHandler()
	employeeshandler.NewHandler()
	awardshandler.NewHandler()
	promotionshandler.NewHandler()
	resignationshandler.NewHandler()
	terminationshandler.NewHandler()
	transfershandler.NewHandler()
	warningshandler.NewHandler()
	travelordershandler.NewHandler()
	scheduleshandler.NewHandler()
	initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача завершения командировок после даты возвращения
	if *config.Conf.Workers.TravelOrderCompleteEnabled {
		interval := time.Duration(config.Conf.Workers.TravelOrderCompleteMin) * time.Minute
		travelorderworker.StartWorker(ctx, interval)
	} else {
		log.Info("автоматическое завершение командировок отключено")
	}
}
