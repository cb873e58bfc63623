package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"healthtick/config"
	"healthtick/infras/otel/mocks"
	clientMocks "healthtick/internal/domains/client/mocks"
	"healthtick/internal/domains/client/model"
	"healthtick/internal/domains/client/service"
	"healthtick/shared/cache"
	cacheMocks "healthtick/shared/cache/mocks"
	gDto "healthtick/shared/dto"
	"healthtick/shared/failure"
	gModel "healthtick/shared/model"
	"healthtick/shared/timezone"
)

func newService(t *testing.T) (service.Client, *clientMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := clientMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil).
		AnyTimes()

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mockOtel), mockRepo
}

func sampleClients() []model.Client {
	metadata := gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  "system",
		ModifiedBy: "system",
	}

	return []model.Client{
		{ID: "client-1", Name: "Sriram Kumar", Phone: "9876543210", Metadata: metadata},
		{ID: "client-2", Name: "Shilpa Mehta", Phone: "9876543211", Metadata: metadata},
	}
}

func TestClientService_GetAll(t *testing.T) {
	svc, mockRepo := newService(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), params, gomock.Any()).
		Return(sampleClients(), nil)

	res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Clients, 2)
	assert.Equal(t, "Sriram Kumar", res.Clients[0].Name)
}

func TestClientService_GetAllRepositoryError(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(0, errors.New("database error"))

	_, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})

	assert.Error(t, err)
}

func TestClientService_Get(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(sampleClients()[0], nil)

	res, err := svc.Get(context.Background(), "client-1")

	assert.NoError(t, err)
	assert.Equal(t, "client-1", res.ID)
	assert.Equal(t, "9876543210", res.Phone)
}

func TestClientService_GetNotFound(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Client{}, nil)

	_, err := svc.Get(context.Background(), "client-x")

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}
