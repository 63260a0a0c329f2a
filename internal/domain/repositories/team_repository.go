package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/PavaniTiago/socioteam-api/internal/domain/entities"
)

type TeamRepository interface {
	GetTeams(ctx context.Context) ([]entities.Team, error)
	GetTeam(ctx context.Context, teamID string) (*entities.Team, error)
	CreateTeam(ctx context.Context, team *entities.Team) error
	ReplaceMembers(ctx context.Context, teamID string, employeeIDs []string) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository cria uma nova instância de TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db}
}

func preloadMembers(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("employee_id ASC")
}

// GetTeams retorna as equipes com seus membros, ordenadas por nome
func (r *teamRepository) GetTeams(ctx context.Context) ([]entities.Team, error) {
	var teams []entities.Team
	err := r.db.WithContext(ctx).
		Preload("Members", preloadMembers).
		Order("name ASC").
		Order("id ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// GetTeam retorna gorm.ErrRecordNotFound se a equipe não existir
func (r *teamRepository) GetTeam(ctx context.Context, teamID string) (*entities.Team, error) {
	var team entities.Team
	err := r.db.WithContext(ctx).
		Preload("Members", preloadMembers).
		Where("id = ?", teamID).
		First(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// CreateTeam grava a equipe e os membros informados em team.Members
func (r *teamRepository) CreateTeam(ctx context.Context, team *entities.Team) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(team).Error
	})
}

// ReplaceMembers substitui todos os membros da equipe
func (r *teamRepository) ReplaceMembers(ctx context.Context, teamID string, employeeIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", teamID).Delete(&entities.TeamMember{}).Error; err != nil {
			return err
		}
		if len(employeeIDs) == 0 {
			return nil
		}

		members := make([]entities.TeamMember, len(employeeIDs))
		for i, id := range employeeIDs {
			members[i] = entities.TeamMember{TeamID: teamID, EmployeeID: id}
		}
		return tx.Create(&members).Error
	})
}
