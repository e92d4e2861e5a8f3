package backend

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/optic-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/optic-manager/internal/db"
	"github.com/BruksfildServices01/optic-manager/internal/store"
)

// Open builds the backend selected by STORAGE_DRIVER. The returned
// close function releases connections and is never nil.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.Backend, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageDriver {
	case config.DriverPostgres, config.DriverSQLite:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return nil, noop, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, noop, err
		}
		logger.Info("storage backend ready", zap.String("driver", cfg.StorageDriver))
		return NewGormBackend(db), sqlDB.Close, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		logger.Info("storage backend ready", zap.String("driver", cfg.StorageDriver), zap.String("addr", cfg.RedisAddr))
		return NewRedisBackend(client, cfg.RedisPrefix), client.Close, nil

	case config.DriverS3:
		logger.Info("storage backend ready", zap.String("driver", cfg.StorageDriver), zap.String("bucket", cfg.S3Bucket))
		return NewS3Backend(newS3Client(cfg), cfg.S3Bucket, cfg.S3Prefix), noop, nil

	case config.DriverFile:
		b, err := NewFileBackend(cfg.DataDir)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("storage backend ready", zap.String("driver", cfg.StorageDriver), zap.String("dir", cfg.DataDir))
		return b, noop, nil

	case config.DriverMemory:
		logger.Warn("memory storage selected, data is lost on exit")
		return store.NewMemoryBackend(), noop, nil
	}

	return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

func newS3Client(cfg *config.Config) *s3.Client {
	awsCfg := aws.Config{Region: cfg.S3Region}
	if cfg.S3AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")
	} else {
		awsCfg.Credentials = aws.AnonymousCredentials{}
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
}
