package services

import (
	"context"

	"niddle_backend/internal/logger"
	"niddle_backend/internal/models"
	"niddle_backend/internal/repositories"
	"niddle_backend/internal/services/dto"
	"niddle_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CardService interface {
	Add(ctx context.Context, db *gorm.DB, userID uint, req *dto.AddCardRequest) (*models.Card, error)
	Get(ctx context.Context, db *gorm.DB, userID, cardID uint) (*models.Card, error)
	List(ctx context.Context, db *gorm.DB, userID uint) ([]models.Card, error)
	Delete(ctx context.Context, db *gorm.DB, userID, cardID uint) error
	SetMain(ctx context.Context, db *gorm.DB, userID, cardID uint) error
}

type CardServiceImpl struct {
	cards repositories.CardRepository
}

func NewCardService(cards repositories.CardRepository) CardService {
	return &CardServiceImpl{cards: cards}
}

// Add stores a card. When the new card is flagged main, the previous
// main card is demoted in the same transaction so the one-main-card
// invariant holds at every commit point.
func (s *CardServiceImpl) Add(ctx context.Context, db *gorm.DB, userID uint, req *dto.AddCardRequest) (*models.Card, error) {
	card := &models.Card{
		Number:    req.Number,
		ValidThru: req.ValidThru,
		Name:      req.Name,
		CVV:       req.CVV,
		Main:      req.Main,
		UserID:    userID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if req.Main {
			current, err := s.cards.FindMainByUser(tx, userID)
			if err != nil {
				return err
			}
			if current != nil {
				if err := s.cards.SetMainFlag(tx, current.ID, false); err != nil {
					return err
				}
			}
		}
		return s.cards.Create(tx, card)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "card added", "user_id", userID, "card_id", card.ID)
	return card, nil
}

func (s *CardServiceImpl) Get(ctx context.Context, db *gorm.DB, userID, cardID uint) (*models.Card, error) {
	return s.ownedCard(db, userID, cardID)
}

func (s *CardServiceImpl) List(ctx context.Context, db *gorm.DB, userID uint) ([]models.Card, error) {
	cards, err := s.cards.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return cards, nil
}

func (s *CardServiceImpl) Delete(ctx context.Context, db *gorm.DB, userID, cardID uint) error {
	if _, err := s.ownedCard(db, userID, cardID); err != nil {
		return err
	}

	if err := s.cards.Delete(db, cardID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "card deleted", "user_id", userID, "card_id", cardID)
	return nil
}

// SetMain promotes a card. Demotion of the old main card and promotion
// of the new one commit together.
func (s *CardServiceImpl) SetMain(ctx context.Context, db *gorm.DB, userID, cardID uint) error {
	card, err := s.ownedCard(db, userID, cardID)
	if err != nil {
		return err
	}
	if card.Main {
		return nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		current, err := s.cards.FindMainByUser(tx, userID)
		if err != nil {
			return err
		}
		if current != nil {
			if err := s.cards.SetMainFlag(tx, current.ID, false); err != nil {
				return err
			}
		}
		return s.cards.SetMainFlag(tx, cardID, true)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "main card changed", "user_id", userID, "card_id", cardID)
	return nil
}

func (s *CardServiceImpl) ownedCard(db *gorm.DB, userID, cardID uint) (*models.Card, error) {
	card, err := s.cards.FindByID(db, cardID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCardNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if card.UserID != userID {
		return nil, apperrors.ErrNotCardOwner
	}
	return card, nil
}
