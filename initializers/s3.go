package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"hr-records-backend/config"
	filestorage "hr-records-backend/lib/file-storage"
	apimodels "hr-records-backend/models/api"
	s3client "hr-records-backend/s3"
)

func InitS3(ctx context.Context) {
	apimodels.StorageURL = config.Conf.S3.StorageURL
	if config.Conf.S3.AccessKeyID == "" {
		log.Warn("S3 не настроен, вложения недоступны")
		filestorage.NewHandler(nil, config.Conf.S3.BucketName, config.Conf.S3.StorageURL)
		return
	}
	minioClient, err := s3client.NewClient(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		filestorage.NewHandler(nil, config.Conf.S3.BucketName, config.Conf.S3.StorageURL)
		return
	}

	// Проверка соединения
	if err = s3client.MakeBucket(ctx, minioClient, config.Conf.S3.BucketName); err != nil {
		log.WithError(err).Error("S3 соединение не удалось, не удалось проверить бакет")
	}

	s3client.Client = minioClient
	filestorage.NewHandler(minioClient, config.Conf.S3.BucketName, config.Conf.S3.StorageURL)
	log.Info("S3 клиент успешно инициализирован")
}
