package services

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Service hands out presigned URLs so photo bytes go straight to the
// object store; the server itself never proxies uploads.
type S3Service struct {
	Presigner *s3.PresignClient
	Bucket    string
}

func NewS3Service(cfg aws.Config, bucket string) *S3Service {
	return &S3Service{
		Presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		Bucket:    bucket,
	}
}

// GenerateUploadURL returns a presigned PUT URL and the object key for a new
// profile photo.
func (s *S3Service) GenerateUploadURL(ctx context.Context, fileName, fileType string) (string, string, error) {
	key := "profile-pics/" + time.Now().Format("20060102150405") + "-" + fileName
	params := &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}

	presigned, err := s.Presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", &UpstreamError{Message: "Unable to create upload URL.", Err: err}
	}
	return presigned.URL, key, nil
}

// GenerateReadURL returns a presigned GET URL for a stored photo.
func (s *S3Service) GenerateReadURL(ctx context.Context, key string) (string, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}

	presigned, err := s.Presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", &UpstreamError{Message: "Unable to create read URL.", Err: err}
	}
	return presigned.URL, nil
}
