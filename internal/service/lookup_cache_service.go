package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/afiagithub/VitalCare-server/internal/domain/entity"
	domainRepo "github.com/afiagithub/VitalCare-server/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	districtsCacheKey = "lookup:districts"
	upazilasCacheKey  = "lookup:upazilas"

	// Reference data changes out of band, rarely. A long TTL is enough.
	lookupCacheTTL = 12 * time.Hour
)

// CachedLookupRepository caches the static district/upazila reference data
// in Redis. Cache misses and Redis failures fall through to MongoDB, so a
// degraded cache never takes lookups down with it.
type CachedLookupRepository struct {
	redisClient *redis.Client
	lookupRepo  domainRepo.LookupRepository
	log         *logrus.Logger
}

func NewCachedLookupRepository(redisClient *redis.Client, lookupRepo domainRepo.LookupRepository, log *logrus.Logger) domainRepo.LookupRepository {
	return &CachedLookupRepository{
		redisClient: redisClient,
		lookupRepo:  lookupRepo,
		log:         log,
	}
}

func (s *CachedLookupRepository) Districts(ctx context.Context) ([]entity.District, error) {
	var districts []entity.District
	if s.getCached(ctx, districtsCacheKey, &districts) {
		return districts, nil
	}

	districts, err := s.lookupRepo.Districts(ctx)
	if err != nil {
		return nil, err
	}

	s.setCached(ctx, districtsCacheKey, districts)
	return districts, nil
}

func (s *CachedLookupRepository) Upazilas(ctx context.Context) ([]entity.Upazila, error) {
	var upazilas []entity.Upazila
	if s.getCached(ctx, upazilasCacheKey, &upazilas) {
		return upazilas, nil
	}

	upazilas, err := s.lookupRepo.Upazilas(ctx)
	if err != nil {
		return nil, err
	}

	s.setCached(ctx, upazilasCacheKey, upazilas)
	return upazilas, nil
}

func (s *CachedLookupRepository) getCached(ctx context.Context, key string, dest interface{}) bool {
	if s.redisClient == nil {
		return false
	}

	payload, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnf("Failed to read %s from cache: %+v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		s.log.Warnf("Failed to decode cached %s: %+v", key, err)
		return false
	}
	return true
}

func (s *CachedLookupRepository) setCached(ctx context.Context, key string, value interface{}) {
	if s.redisClient == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		s.log.Warnf("Failed to encode %s for cache: %+v", key, err)
		return
	}

	if err := s.redisClient.Set(ctx, key, payload, lookupCacheTTL).Err(); err != nil {
		s.log.Warnf("Failed to write %s to cache: %+v", key, err)
	}
}
