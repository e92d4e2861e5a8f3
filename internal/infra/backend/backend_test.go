package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"

	"github.com/BruksfildServices01/optic-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/optic-manager/internal/db"
	"github.com/BruksfildServices01/optic-manager/internal/store"
)

// exerciseBackend is the contract every backend must satisfy.
func exerciseBackend(t *testing.T, b store.Backend) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := b.Get(ctx, store.KeyPatients)
	require.NoError(t, err)
	require.False(t, ok, "unwritten key must report missing")

	require.NoError(t, b.Set(ctx, store.KeyPatients, `[{"id":"1"}]`))
	v, ok, err := b.Get(ctx, store.KeyPatients)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, v)

	require.NoError(t, b.Set(ctx, store.KeyPatients, `[]`))
	v, _, err = b.Get(ctx, store.KeyPatients)
	require.NoError(t, err)
	assert.Equal(t, `[]`, v, "second write overwrites")

	_, ok, err = b.Get(ctx, store.KeyOrders)
	require.NoError(t, err)
	assert.False(t, ok, "keys are independent")
}

// ======================================================
// GORM (sqlite in memory)
// ======================================================

func TestGormBackend(t *testing.T) {
	dsn := fmt.Sprintf("file:gormbackend%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := dbpkg.Open(sqlite.Open(dsn), false)
	require.NoError(t, err)

	exerciseBackend(t, NewGormBackend(db))
}

func TestGormBackend_FeedsStore(t *testing.T) {
	dsn := fmt.Sprintf("file:gormstore%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := dbpkg.Open(sqlite.Open(dsn), false)
	require.NoError(t, err)

	ctx := context.Background()
	b := NewGormBackend(db)
	require.NoError(t, store.New(b, nil).Save(ctx))

	s := store.New(b, nil)
	require.NoError(t, s.Load(ctx))
	assert.Empty(t, s.Snapshot().Patients)
}

// ======================================================
// REDIS (fake client)
// ======================================================

type fakeRedis struct {
	values map[string]string
	err    error
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.values[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func TestRedisBackend(t *testing.T) {
	client := &fakeRedis{values: map[string]string{}}
	exerciseBackend(t, NewRedisBackend(client, "optica:"))

	_, ok := client.values["optica:patients"]
	assert.True(t, ok, "keys are prefixed")
}

func TestRedisBackend_Error(t *testing.T) {
	client := &fakeRedis{values: map[string]string{}, err: errors.New("connection refused")}
	b := NewRedisBackend(client, "")

	_, _, err := b.Get(context.Background(), store.KeyOrders)
	assert.Error(t, err)
	assert.Error(t, b.Set(context.Background(), store.KeyOrders, "[]"))
}

// ======================================================
// S3 (fake client)
// ======================================================

type fakeS3 struct {
	objects map[string][]byte
	puts    []*s3.PutObjectInput
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Bucket+"/"+*in.Key] = body
	f.puts = append(f.puts, in)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Backend(t *testing.T) {
	client := &fakeS3{objects: map[string][]byte{}}
	exerciseBackend(t, NewS3Backend(client, "shop", "optica/"))

	_, ok := client.objects["shop/optica/patients.json"]
	assert.True(t, ok)
	require.NotEmpty(t, client.puts)
	assert.Equal(t, "application/json", *client.puts[0].ContentType)
}

// ======================================================
// FILE
// ======================================================

func TestFileBackend(t *testing.T) {
	b, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)
	exerciseBackend(t, b)
}

// ======================================================
// OPEN
// ======================================================

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		b, closeFn, err := Open(ctx, &config.Config{StorageDriver: config.DriverMemory}, zap.NewNop())
		require.NoError(t, err)
		defer closeFn()
		_, isMemory := b.(*store.MemoryBackend)
		assert.True(t, isMemory)
	})

	t.Run("file", func(t *testing.T) {
		dir := t.TempDir()
		b, closeFn, err := Open(ctx, &config.Config{StorageDriver: config.DriverFile, DataDir: dir}, zap.NewNop())
		require.NoError(t, err)
		defer closeFn()
		exerciseBackend(t, b)
	})

	t.Run("sqlite", func(t *testing.T) {
		path := t.TempDir() + "/optica.db"
		b, closeFn, err := Open(ctx, &config.Config{StorageDriver: config.DriverSQLite, SQLitePath: path}, zap.NewNop())
		require.NoError(t, err)
		defer closeFn()
		exerciseBackend(t, b)
	})

	t.Run("unknown", func(t *testing.T) {
		_, closeFn, err := Open(ctx, &config.Config{StorageDriver: "floppy"}, zap.NewNop())
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "floppy"))
		assert.NoError(t, closeFn())
	})
}
