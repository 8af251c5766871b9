package evalsrvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// S3EvalRepo persists finished evaluations as zstd-compressed JSON
// blobs. Comparison results carry full test inputs and outputs, which
// compress well and get large otherwise.
type S3EvalRepo struct {
	logger     *slog.Logger
	client     *s3.Client
	bucketName string
}

func NewS3EvalRepo(logger *slog.Logger, client *s3.Client, bucketName string) *S3EvalRepo {
	return &S3EvalRepo{
		logger:     logger,
		client:     client,
		bucketName: bucketName,
	}
}

func objectKey(evalUuid uuid.UUID) string {
	return fmt.Sprintf("%s.json.zst", evalUuid.String())
}

func (r *S3EvalRepo) Save(ctx context.Context, eval Evaluation) error {
	data, err := json.Marshal(eval)
	if err != nil {
		return fmt.Errorf("failed to marshal evaluation: %w", err)
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	defer encoder.Close()
	compressed := encoder.EncodeAll(data, make([]byte, 0, len(data)))

	key := objectKey(eval.UUID)
	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(r.bucketName),
		Key:    aws.String(key),
		Body:   bytes.NewReader(compressed),
	})
	if err != nil {
		return fmt.Errorf("failed to store evaluation in S3: %w", err)
	}
	r.logger.Debug("stored evaluation", "key", key, "bytes", len(compressed))

	return nil
}

func (r *S3EvalRepo) Get(ctx context.Context, evalUuid uuid.UUID) (Evaluation, error) {
	output, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucketName),
		Key:    aws.String(objectKey(evalUuid)),
	})
	if err != nil {
		return Evaluation{}, ErrEvalNotFound().SetDebug(err)
	}
	defer output.Body.Close()

	compressed, err := io.ReadAll(output.Body)
	if err != nil {
		return Evaluation{}, fmt.Errorf("failed to read evaluation data: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return Evaluation{}, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	defer decoder.Close()
	data, err := decoder.DecodeAll(compressed, nil)
	if err != nil {
		return Evaluation{}, fmt.Errorf("failed to decompress evaluation: %w", err)
	}

	var eval Evaluation
	if err := json.Unmarshal(data, &eval); err != nil {
		return Evaluation{}, fmt.Errorf("failed to unmarshal evaluation: %w", err)
	}
	return eval, nil
}
