package store

import (
	"context"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/summitops/regdesk/internal/core"
)

// S3 serves attachments from an S3 bucket. Direct references are object
// keys; derived-filename queries become prefix listings under the folder
// scope, so a search tolerates suffix drift (scanned copies saved as
// "_2.jpg" and the like).
type S3 struct {
	client *s3.S3
	bucket string
	prefix string
}

// NewS3 creates an S3-backed store. Credentials come from the standard AWS
// environment and instance chain.
func NewS3(bucket, region, prefix string) (*S3, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("aws session: %w", err)
	}
	return &S3{
		client: s3.New(sess),
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}, nil
}

// Fetch retrieves an object by key.
func (s *S3) Fetch(ctx context.Context, direct string) (*Object, error) {
	key := s.scopedKey(direct)
	out, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil, fmt.Errorf("%w: object %s", core.ErrNotFound, key)
		}
		return nil, fmt.Errorf("%w: s3 get %s: %v", core.ErrUpstream, key, err)
	}

	return &Object{
		Body:        out.Body,
		ContentType: contentTypeFor(aws.StringValue(out.ContentType), key),
		Name:        path.Base(key),
	}, nil
}

// Search lists the folder scope for the derived filename and fetches the
// first match. The filename acts as a key prefix within the folder.
func (s *S3) Search(ctx context.Context, q core.FetchQuery) (*Object, error) {
	prefix := s.scopedKey(path.Join(q.Folder, q.Filename))
	out, err := s.client.ListObjectsV2WithContext(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int64(1),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: s3 list %s: %v", core.ErrUpstream, prefix, err)
	}
	if len(out.Contents) == 0 {
		return nil, fmt.Errorf("%w: no object under %s", core.ErrNotFound, prefix)
	}

	key := aws.StringValue(out.Contents[0].Key)
	// Strip our own scope prefix so Fetch does not apply it twice.
	return s.Fetch(ctx, strings.TrimPrefix(key, s.prefix+"/"))
}

// scopedKey prepends the configured key prefix, if any.
func (s *S3) scopedKey(key string) string {
	key = strings.TrimPrefix(key, "/")
	if s.prefix == "" {
		return key
	}
	return s.prefix + "/" + key
}

// contentTypeFor prefers the stored content type, falling back to the
// filename extension. Generic octet-stream types carry no information and
// defer to the extension too.
func contentTypeFor(stored, key string) string {
	if stored != "" && stored != "binary/octet-stream" && stored != "application/octet-stream" {
		return stored
	}
	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
