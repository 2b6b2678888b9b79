package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
	"hr-admin-backend/config"
	s3client "hr-admin-backend/s3"
)

func InitS3() {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV2(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("failed to init S3 client")
		return
	}
	s3client.Client = minioClient

	if err = s3client.NewProvider(minioClient).MakeBucket(context.Background()); err != nil {
		log.WithError(err).Error("failed to ensure S3 bucket")
		return
	}
	log.Info("S3 client initialized")
}
