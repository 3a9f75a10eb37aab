package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ComplaintRepository defines the interface for data access of Complaint entities
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *model.Complaint) error
	GetByID(ctx context.Context, id string) (*model.Complaint, error)
	ListAll(ctx context.Context) ([]model.Complaint, error)
	ListByClient(ctx context.Context, clientID string) ([]model.Complaint, error)
	ListByFournisseur(ctx context.Context, fournisseurID string) ([]model.Complaint, error)
	Save(ctx context.Context, complaint *model.Complaint) error
	Delete(ctx context.Context, id string) error
}

type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository returns a new instance of ComplaintRepository
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *model.Complaint) error {
	return GetDB(ctx, r.db).Create(complaint).Error
}

func (r *complaintRepository) GetByID(ctx context.Context, id string) (*model.Complaint, error) {
	var complaint model.Complaint
	if err := GetDB(ctx, r.db).
		Preload("Client").
		Preload("Fournisseur").
		First(&complaint, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

// list is the shared fetch path: client/fournisseur emails preloaded for
// display, newest complaint first.
func (r *complaintRepository) list(ctx context.Context, conds ...interface{}) ([]model.Complaint, error) {
	var complaints []model.Complaint
	query := GetDB(ctx, r.db).
		Preload("Client").
		Preload("Fournisseur").
		Order("created_at desc")
	if len(conds) > 0 {
		query = query.Where(conds[0], conds[1:]...)
	}
	if err := query.Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *complaintRepository) ListAll(ctx context.Context) ([]model.Complaint, error) {
	return r.list(ctx)
}

func (r *complaintRepository) ListByClient(ctx context.Context, clientID string) ([]model.Complaint, error) {
	return r.list(ctx, "client_id = ?", clientID)
}

func (r *complaintRepository) ListByFournisseur(ctx context.Context, fournisseurID string) ([]model.Complaint, error) {
	return r.list(ctx, "fournisseur_id = ?", fournisseurID)
}

// Save persists the complaint row only; preloaded client/fournisseur
// associations are never written back.
func (r *complaintRepository) Save(ctx context.Context, complaint *model.Complaint) error {
	return GetDB(ctx, r.db).Omit(clause.Associations).Save(complaint).Error
}

// Delete removes by filter; deleting an id that no longer exists is not an
// error, matching the legacy delete-by-filter semantics.
func (r *complaintRepository) Delete(ctx context.Context, id string) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Complaint{}).Error
}
