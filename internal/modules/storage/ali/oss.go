package ali

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/config"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/tools"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/google/uuid"
)

type OssHost struct {
	client     *oss.Client
	bucketName string
	directory  string
	urlExpires time.Duration
}

func NewOssHost(cfg config.AliOss, urlExpires time.Duration) *OssHost {
	credential := credentials.NewStaticCredentialsProvider(cfg.AccessKeyId, cfg.AccessKeySecret, "")
	c := oss.LoadDefaultConfig().
		WithCredentialsProvider(credential).
		WithEndpoint(cfg.Endpoint).WithRegion(cfg.Region)
	client := oss.NewClient(c)
	if client == nil {
		panic("create oss client failed")
	}
	return &OssHost{
		client:     client,
		bucketName: cfg.Bucket,
		directory:  cfg.Directory,
		urlExpires: urlExpires,
	}
}

// Upload puts the bytes under a fresh uuid key and returns a presigned
// URL valid for the configured expiry.
func (o *OssHost) Upload(ctx context.Context, b []byte) (string, error) {
	fName := uuid.New().String() + "." + tools.DetectImageType(b).String()
	key := o.directory + fName
	request := &oss.PutObjectRequest{
		Bucket:             oss.Ptr(o.bucketName),
		Key:                oss.Ptr(key),
		Body:               bytes.NewReader(b),
		ContentDisposition: oss.Ptr(fmt.Sprintf("attachment; filename=\"%s\"", fName)),
	}
	_, err := o.client.PutObject(ctx, request)
	if err != nil {
		return "", err
	}
	ret, err := o.client.Presign(ctx, &oss.GetObjectRequest{Bucket: oss.Ptr(o.bucketName), Key: oss.Ptr(key)}, oss.PresignExpires(o.urlExpires))
	if err != nil {
		return "", err
	}
	return ret.URL, nil
}
