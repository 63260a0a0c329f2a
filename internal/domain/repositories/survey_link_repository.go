package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/PavaniTiago/socioteam-api/internal/domain/entities"
)

type SurveyLinkRepository interface {
	CreateLinks(ctx context.Context, links []entities.SurveyLink) error
	GetLinks(ctx context.Context, surveyID, status string) ([]entities.SurveyLink, error)
	GetLinkByToken(ctx context.Context, token string) (*entities.SurveyLink, error)
	MarkExpired(ctx context.Context, token string) error
}

type surveyLinkRepository struct {
	db *gorm.DB
}

// NewSurveyLinkRepository cria uma nova instância de SurveyLinkRepository
func NewSurveyLinkRepository(db *gorm.DB) SurveyLinkRepository {
	return &surveyLinkRepository{db}
}

func (r *surveyLinkRepository) CreateLinks(ctx context.Context, links []entities.SurveyLink) error {
	if len(links) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&links, 100).Error
}

// GetLinks lista os links de uma pesquisa, opcionalmente filtrando por status
func (r *surveyLinkRepository) GetLinks(ctx context.Context, surveyID, status string) ([]entities.SurveyLink, error) {
	var links []entities.SurveyLink

	query := r.db.WithContext(ctx).Where("survey_id = ?", surveyID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at ASC").Order("token ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// GetLinkByToken retorna gorm.ErrRecordNotFound se o token não existir
func (r *surveyLinkRepository) GetLinkByToken(ctx context.Context, token string) (*entities.SurveyLink, error) {
	var link entities.SurveyLink
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *surveyLinkRepository) MarkExpired(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Model(&entities.SurveyLink{}).
		Where("token = ? AND status = ?", token, entities.LinkStatusPending).
		Update("status", entities.LinkStatusExpired).Error
}
