package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/repository/mysql/model"
)

type subscriberRepository struct {
	DB *gorm.DB
}

var _ domain.SubscriberRepository = (*subscriberRepository)(nil)

func NewSubscriberRepository(db *gorm.DB) *subscriberRepository {
	return &subscriberRepository{db}
}

func (m *subscriberRepository) GetByEmail(ctx context.Context, email string) (domain.Subscriber, error) {
	var sub model.Subscriber
	if err := m.DB.WithContext(ctx).First(&sub, "email = ?", email).Error; err != nil {
		return domain.Subscriber{}, domain.ErrNotFound
	}

	return sub.ToDomain(), nil
}

func (m *subscriberRepository) FetchAll(ctx context.Context) ([]domain.Subscriber, error) {
	var subs []model.Subscriber
	err := m.DB.WithContext(ctx).Order("created_at DESC").Find(&subs).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Subscriber, len(subs))
	for i := range subs {
		res[i] = subs[i].ToDomain()
	}
	return res, nil
}

func (m *subscriberRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.Subscriber{}).
		Where("subscribed = ?", true).
		Count(&count).
		Error

	return count, err
}

func (m *subscriberRepository) Store(ctx context.Context, s *domain.Subscriber) error {
	subModel := model.NewSubscriberFromDomain(s)
	result := m.DB.WithContext(ctx).Create(&subModel)
	if result.Error != nil {
		return result.Error
	}
	s.CreatedAt = subModel.CreatedAt
	s.UpdatedAt = subModel.UpdatedAt
	return nil
}

func (m *subscriberRepository) Update(ctx context.Context, s *domain.Subscriber) error {
	subModel := model.NewSubscriberFromDomain(s)
	result := m.DB.WithContext(ctx).Model(&subModel).Select("subscribed").Updates(&subModel)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

type campaignRepository struct {
	DB *gorm.DB
}

var _ domain.CampaignRepository = (*campaignRepository)(nil)

func NewCampaignRepository(db *gorm.DB) *campaignRepository {
	return &campaignRepository{db}
}

func (m *campaignRepository) GetByID(ctx context.Context, id string) (domain.Campaign, error) {
	var campaign model.Campaign
	if err := m.DB.WithContext(ctx).First(&campaign, "id = ?", id).Error; err != nil {
		return domain.Campaign{}, domain.ErrNotFound
	}

	return campaign.ToDomain(), nil
}

func (m *campaignRepository) FetchAll(ctx context.Context) ([]domain.Campaign, error) {
	var campaigns []model.Campaign
	err := m.DB.WithContext(ctx).Order("created_at DESC").Find(&campaigns).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Campaign, len(campaigns))
	for i := range campaigns {
		res[i] = campaigns[i].ToDomain()
	}
	return res, nil
}

func (m *campaignRepository) Store(ctx context.Context, c *domain.Campaign) error {
	campaignModel := model.NewCampaignFromDomain(c)
	result := m.DB.WithContext(ctx).Create(&campaignModel)
	if result.Error != nil {
		return result.Error
	}
	c.CreatedAt = campaignModel.CreatedAt
	c.UpdatedAt = campaignModel.UpdatedAt
	return nil
}

func (m *campaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	campaignModel := model.NewCampaignFromDomain(c)
	result := m.DB.WithContext(ctx).Model(&campaignModel).Updates(&campaignModel)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
