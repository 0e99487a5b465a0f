package services

import (
	"context"
	"regexp"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"imagevault/internal/common"
	"imagevault/internal/config"
	"imagevault/internal/logging"
	"imagevault/internal/models"
	"imagevault/internal/repositories/uploads"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Only still images are accepted.
var imageMimetype = regexp.MustCompile(`^image/(jpeg|jpg|png)$`)

const presignTTL = 15 * time.Minute

// UploadService records image uploads and hands out presigned URLs for the
// object store. Blob bytes never pass through this process; clients PUT and
// GET them directly against the store.
type UploadService struct {
	repo   uploads.Repository
	config *config.Config
	logger logging.Logger
}

func NewUploadService(repo uploads.Repository, config *config.Config, logger logging.Logger) *UploadService {
	return &UploadService{repo: repo, config: config, logger: logger}
}

// UploadParams describes the received file.
type UploadParams struct {
	Filename     string
	OriginalName string
	Mimetype     string
	Size         int64
}

// UploadMetadata is the caller-supplied description of an upload.
type UploadMetadata struct {
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

// GetRandomStorageKey returns a fresh object key, partitioned by date so the
// bucket listing stays manageable.
func GetRandomStorageKey() string {
	d := time.Now()
	return uuid.New().String() + "-" + d.Format("20060102")
}

func (s *UploadService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3AccessKey,
			s.config.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// Create validates and records an upload, then returns the record together
// with a presigned PUT URL the client can use to store the bytes.
func (s *UploadService) Create(ctx context.Context, file UploadParams, meta UploadMetadata) (*models.Upload, string, error) {
	if file.Filename == "" || file.OriginalName == "" || file.Size <= 0 {
		return nil, "", common.ErrInvalidInput
	}
	if !imageMimetype.MatchString(file.Mimetype) {
		return nil, "", common.ErrInvalidInput
	}
	if len(meta.Title) < 3 {
		return nil, "", common.ErrInvalidInput
	}

	key, url, err := s.presignedPutURL(ctx)
	if err != nil {
		return nil, "", err
	}

	tags := meta.Tags
	if tags == nil {
		tags = []string{}
	}

	up, err := s.repo.Create(ctx, &models.Upload{
		Filename:     file.Filename,
		OriginalName: file.OriginalName,
		Mimetype:     file.Mimetype,
		Size:         file.Size,
		Title:        meta.Title,
		Tags:         tags,
		StorageKey:   key,
	})
	if err != nil {
		return nil, "", err
	}

	s.logger.Info(ctx, "upload recorded", "id", up.ID, "title", up.Title, "size", up.Size)
	return up, url, nil
}

func (s *UploadService) List(ctx context.Context) ([]*models.Upload, error) {
	return s.repo.List(ctx)
}

// DownloadURL returns a presigned GET URL for the stored object of an
// upload.
func (s *UploadService) DownloadURL(ctx context.Context, id int64) (string, error) {
	up, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &up.StorageKey,
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func (s *UploadService) presignedPutURL(ctx context.Context) (string, string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := GetRandomStorageKey()

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}
