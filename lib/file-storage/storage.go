package filestorage

import (
	"bytes"
	"context"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrNotConfigured = errors.New("файловое хранилище не настроено")

// File файл из multipart запроса
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

type Object struct {
	Body        io.ReadCloser
	Size        int64
	ContentType string
}

type Provider interface {
	Upload(ctx context.Context, folder, fileName string, body []byte, contentType string) (objectPath string, err error)
	Get(ctx context.Context, objectPath string) (*Object, error)
	Delete(ctx context.Context, objectPath string) error
	URL(objectPath string) string
}

var Instance Provider = disabled{}

func NewHandler(client *minio.Client, bucketName, storageURL string) {
	if client == nil {
		log.Warn("клиент S3 не инициализирован, вложения недоступны")
		Instance = disabled{storageURL: storageURL}
		return
	}
	Instance = impl{
		s3client:   client,
		bucketName: bucketName,
		storageURL: storageURL,
	}
}

type impl struct {
	s3client   *minio.Client
	bucketName string
	storageURL string
}

func (i impl) Upload(ctx context.Context, folder, fileName string, body []byte, contentType string) (string, error) {
	objectPath := ObjectPath(folder, fileName)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, i.bucketName, objectPath, bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки файла в хранилище")
	}
	return objectPath, nil
}

func (i impl) Get(ctx context.Context, objectPath string) (*Object, error) {
	obj, err := i.s3client.GetObject(ctx, i.bucketName, objectPath, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, nil
		}
		return nil, err
	}
	return &Object{
		Body:        obj,
		Size:        info.Size,
		ContentType: info.ContentType,
	}, nil
}

func (i impl) Delete(ctx context.Context, objectPath string) error {
	if objectPath == "" {
		return nil
	}
	return i.s3client.RemoveObject(ctx, i.bucketName, objectPath, minio.RemoveObjectOptions{})
}

func (i impl) URL(objectPath string) string {
	return buildURL(i.storageURL, objectPath)
}

// ObjectPath имя объекта <folder>/<uuid><ext>
func ObjectPath(folder, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return path.Join(folder, uuid.New().String()+ext)
}

func buildURL(storageURL, objectPath string) string {
	if objectPath == "" {
		return ""
	}
	return strings.TrimSuffix(storageURL, "/") + "/" + strings.TrimPrefix(objectPath, "/")
}

type disabled struct {
	storageURL string
}

func (d disabled) Upload(context.Context, string, string, []byte, string) (string, error) {
	return "", ErrNotConfigured
}

func (d disabled) Get(context.Context, string) (*Object, error) {
	return nil, ErrNotConfigured
}

func (d disabled) Delete(context.Context, string) error {
	return nil
}

func (d disabled) URL(objectPath string) string {
	return buildURL(d.storageURL, objectPath)
}
