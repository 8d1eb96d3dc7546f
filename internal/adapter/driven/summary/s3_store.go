package summary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3Types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/catalystneuro/dandi-access-vis/internal/shared/types"
)

// S3API is the subset of the S3 client used to read summaries.
type S3API interface {
	s3.ListObjectsV2APIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3Store lê a árvore de resumos de um bucket. O cliente é criado na primeira
// utilização a partir da cadeia padrão de credenciais (AWS_PROFILE etc.).
type s3Store struct {
	client S3API
	mu     sync.Mutex
}

func newLazyS3Store() *s3Store {
	return &s3Store{}
}

func newS3Store(client S3API) *s3Store {
	return &s3Store{client: client}
}

func (s *s3Store) getClient(ctx context.Context) (S3API, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	s.client = s3.NewFromConfig(cfg)
	return s.client, nil
}

// parseS3Root separa "s3://bucket/prefix" em bucket e prefixo (sem barras nas pontas).
func parseS3Root(root string) (string, string, error) {
	rest := strings.TrimPrefix(root, "s3://")
	bucket, prefix, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("invalid S3 root %q: missing bucket", root)
	}
	return bucket, strings.Trim(prefix, "/"), nil
}

func objectKey(prefix, rel string) string {
	if prefix == "" {
		return rel
	}
	return path.Join(prefix, rel)
}

func (s *s3Store) listDirs(ctx context.Context, root, rel string) ([]string, error) {
	bucket, prefix, err := parseS3Root(root)
	if err != nil {
		return nil, err
	}
	client, err := s.getClient(ctx)
	if err != nil {
		return nil, err
	}

	dirPrefix := objectKey(prefix, rel) + "/"
	paginator := s3.NewListObjectsV2Paginator(client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(bucket),
		Prefix:    aws.String(dirPrefix),
		Delimiter: aws.String("/"),
	})

	var names []string
	objects := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing S3 objects: %w", err)
		}
		objects += len(page.Contents)
		for _, cp := range page.CommonPrefixes {
			name := strings.TrimSuffix(strings.TrimPrefix(aws.ToString(cp.Prefix), dirPrefix), "/")
			if name != "" {
				names = append(names, name)
			}
		}
	}

	if len(names) == 0 && objects == 0 {
		return nil, fmt.Errorf("%w: s3://%s/%s", types.ErrFileNotFound, bucket, dirPrefix)
	}
	sort.Strings(names)
	return names, nil
}

func (s *s3Store) open(ctx context.Context, root, rel string) (io.ReadCloser, error) {
	bucket, prefix, err := parseS3Root(root)
	if err != nil {
		return nil, err
	}
	client, err := s.getClient(ctx)
	if err != nil {
		return nil, err
	}

	key := objectKey(prefix, rel)
	result, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *s3Types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("%w: s3://%s/%s", types.ErrFileNotFound, bucket, key)
		}
		return nil, fmt.Errorf("getting object from S3: %w", err)
	}
	return result.Body, nil
}
