package newsletter

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
)

type Service struct {
	subscriberRepo domain.SubscriberRepository
	campaignRepo   domain.CampaignRepository
	validate       *validator.Validate
	policy         *bluemonday.Policy
}

var _ domain.NewsletterUsecase = (*Service)(nil)

func NewService(subscriberRepo domain.SubscriberRepository, campaignRepo domain.CampaignRepository) *Service {
	return &Service{
		subscriberRepo: subscriberRepo,
		campaignRepo:   campaignRepo,
		validate:       validator.New(),
		policy:         bluemonday.UGCPolicy(),
	}
}

// Subscribe creates a subscriber row or re-activates a previously
// unsubscribed one. Subscribing twice is a no-op.
func (s *Service) Subscribe(ctx context.Context, email string) error {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return domain.ErrBadParamInput
	}

	existing, err := s.subscriberRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		sub := domain.Subscriber{
			ID:         uuid.NewString(),
			Email:      email,
			Subscribed: true,
		}
		return s.subscriberRepo.Store(ctx, &sub)
	}

	if existing.Subscribed {
		return nil
	}

	existing.Subscribed = true
	return s.subscriberRepo.Update(ctx, &existing)
}

func (s *Service) Unsubscribe(ctx context.Context, email string) error {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return domain.ErrBadParamInput
	}

	existing, err := s.subscriberRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if !existing.Subscribed {
		return nil
	}

	existing.Subscribed = false
	return s.subscriberRepo.Update(ctx, &existing)
}

func (s *Service) FetchSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	return s.subscriberRepo.FetchAll(ctx)
}

func (s *Service) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	if c.Subject == "" || c.Body == "" {
		return domain.ErrBadParamInput
	}

	c.ID = uuid.NewString()
	c.Body = s.policy.Sanitize(c.Body)
	c.Status = domain.CampaignStatusDraft
	return s.campaignRepo.Store(ctx, c)
}

func (s *Service) FetchCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return s.campaignRepo.FetchAll(ctx)
}

// SendCampaign marks a draft campaign sent. Delivery happens outside this
// service; the recipient count is captured here so the dashboard can show
// how many subscribers the campaign addressed.
func (s *Service) SendCampaign(ctx context.Context, id string) (domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Campaign{}, err
	}

	if campaign.Status == domain.CampaignStatusSent {
		return domain.Campaign{}, domain.ErrConflict
	}

	recipients, err := s.subscriberRepo.CountActive(ctx)
	if err != nil {
		return domain.Campaign{}, err
	}

	now := time.Now()
	campaign.Status = domain.CampaignStatusSent
	campaign.Recipients = recipients
	campaign.SentAt = &now
	campaign.UpdatedAt = now

	if err := s.campaignRepo.Update(ctx, &campaign); err != nil {
		return domain.Campaign{}, err
	}

	return campaign, nil
}
