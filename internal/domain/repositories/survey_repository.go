package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/PavaniTiago/socioteam-api/internal/domain/entities"
)

type SurveyRepository interface {
	GetSurvey(ctx context.Context, surveyID string) (*entities.Survey, error)
	GetResponses(ctx context.Context, surveyID string) ([]entities.SurveyResponse, error)
	// SaveResponseForLink grava a resposta e marca o link como concluído na mesma transação
	SaveResponseForLink(ctx context.Context, resp *entities.SurveyResponse, token string, completedAt time.Time) error
}

type surveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository cria uma nova instância de SurveyRepository
func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db}
}

// GetSurvey retorna a pesquisa com as perguntas ordenadas.
// Retorna gorm.ErrRecordNotFound se a pesquisa não existir.
func (r *surveyRepository) GetSurvey(ctx context.Context, surveyID string) (*entities.Survey, error) {
	var survey entities.Survey

	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC`).Order("id ASC")
		}).
		Where("id = ?", surveyID).
		First(&survey).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

// GetResponses retorna as respostas da pesquisa com as escolhas, em ordem de envio
func (r *surveyRepository) GetResponses(ctx context.Context, surveyID string) ([]entities.SurveyResponse, error) {
	var responses []entities.SurveyResponse

	err := r.db.WithContext(ctx).
		Preload("Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_id ASC").Order("position ASC")
		}).
		Where("survey_id = ?", surveyID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *surveyRepository) SaveResponseForLink(ctx context.Context, resp *entities.SurveyResponse, token string, completedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(resp).Error; err != nil {
			return err
		}

		result := tx.Model(&entities.SurveyLink{}).
			Where("token = ? AND status = ?", token, entities.LinkStatusPending).
			Updates(map[string]interface{}{
				"status":       entities.LinkStatusCompleted,
				"completed_at": completedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// outro envio concluiu o link antes desta transação
			return ErrLinkAlreadyUsed
		}
		return nil
	})
}
