package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/buyer-leads/internal/config"
)

type fakeS3 struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestArchivePutsObject(t *testing.T) {
	fake := &fakeS3{}
	a := NewS3Archiver(fake, "exports-bucket")

	if err := a.Archive(context.Background(), "exports/u/buyers.csv", []byte("a,b")); err != nil {
		t.Fatal(err)
	}
	if aws.ToString(fake.in.Bucket) != "exports-bucket" || aws.ToString(fake.in.Key) != "exports/u/buyers.csv" {
		t.Errorf("input = %+v", fake.in)
	}
	if string(fake.body) != "a,b" {
		t.Errorf("body = %q", fake.body)
	}
}

func TestArchiveWrapsError(t *testing.T) {
	cause := errors.New("access denied")
	a := NewS3Archiver(&fakeS3{err: cause}, "b")

	if err := a.Archive(context.Background(), "k", nil); !errors.Is(err, cause) {
		t.Fatalf("err = %v", err)
	}
}

func TestFromConfigDisabledWithoutBucket(t *testing.T) {
	if a := NewS3ArchiverFromConfig(&config.Config{}); a != nil {
		t.Error("expected nil archiver")
	}
	if a := NewS3ArchiverFromConfig(&config.Config{ExportS3Bucket: "b", ExportS3Region: "ap-south-1"}); a == nil {
		t.Error("expected archiver")
	}
}
